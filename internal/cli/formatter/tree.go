package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is a single line of a tree display. Level 0 items are roots.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Badge  string
	Muted  bool
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders pre-ordered items with box-drawing connectors and
// right-aligned badges. A pipe is drawn under an ancestor only while that
// ancestor still has siblings to come.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type line struct {
		content string
		badge   string
	}
	lines := make([]line, len(items))
	lastAt := []bool{}
	width := 0

	for idx, item := range items {
		if item.Level < len(lastAt) {
			lastAt = lastAt[:item.Level]
		}
		for len(lastAt) < item.Level {
			lastAt = append(lastAt, false)
		}

		var prefix strings.Builder
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				if lastAt[i] {
					prefix.WriteString(treeBlank)
				} else {
					prefix.WriteString(treePipe)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		lastAt = append(lastAt, item.IsLast)

		title := item.Title
		if item.Muted {
			title = Dim(title)
		}
		content := StyleDim.Render(prefix.String()) + title
		lines[idx].content = content
		if item.Badge != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Badge))
		}
		if w := lipgloss.Width(content); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, l := range lines {
		if l.badge == "" {
			b.WriteString(l.content + "\n")
			continue
		}
		pad := max(width-lipgloss.Width(l.content), 0)
		b.WriteString(l.content + strings.Repeat(" ", pad) + "  " + l.badge + "\n")
	}
	return b.String()
}
