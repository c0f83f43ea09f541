package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders lesson progress like [████░░░░] 4/10.
// Completed work is green, the remainder dim.
func RenderProgress(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total <= 0 {
		return fmt.Sprintf("[%s] 0/0", StyleDim.Render(strings.Repeat(emptyBlock, width)))
	}
	done = min(max(done, 0), total)

	filled := done * width / total
	bar := StyleOK.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
	return fmt.Sprintf("[%s] %d/%d", bar, done, total)
}
