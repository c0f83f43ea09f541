package llm

import (
	"io"
	"log/slog"
)

// CallEvent describes one finished Generate call, retries included.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver logs each call as one structured line.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *LogObserver) OnCallComplete(e CallEvent) {
	attrs := []any{
		slog.String("task", string(e.Task)),
		slog.String("model", e.Model),
		slog.Int64("latency_ms", e.LatencyMs),
	}
	if e.Success {
		o.logger.Info("llm_call", attrs...)
		return
	}
	o.logger.Warn("llm_call", append(attrs, slog.String("error_code", e.ErrorCode))...)
}

type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
