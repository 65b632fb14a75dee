package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// SelectionBar renders how many of a job's lines are selected, like
// [███░] 3/4 lines. Fully selected jobs are green, excluded ones dim.
func SelectionBar(included, total, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if total > 0 {
		filled = min(included*width/total, width)
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	switch {
	case total > 0 && included == total:
		style = StyleGreen
	case included == 0:
		style = StyleDim
	}
	return fmt.Sprintf("[%s] %d/%d lines", style.Render(bar), included, total)
}
