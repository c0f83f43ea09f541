package llm

import "errors"

// Sentinels returned by Generate. Callers fall back to offline content on
// any of them.
var (
	ErrUnavailable    = errors.New("llm backend unreachable")
	ErrTimeout        = errors.New("llm call timed out")
	ErrInvalidOutput  = errors.New("llm reply not in the expected shape")
	ErrRetryExhausted = errors.New("llm call failed after retries")
	ErrMissingAPIKey  = errors.New("llm provider needs an api key")
)
