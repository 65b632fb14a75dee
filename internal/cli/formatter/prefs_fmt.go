package formatter

import (
	"sort"
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
)

func FormatPreferences(p domain.Preferences) string {
	var b strings.Builder
	b.WriteString(Header("Preferences"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"SETTING", "VALUE"}, [][]string{
		{"dark mode", EnabledPill(p.DarkMode)},
		{"theme", string(p.BrandTheme)},
	}))
	b.WriteString("\n")
	b.WriteString(FormatFlags(p.Flags))
	return b.String()
}

// FormatFlags lists feature flags by name.
func FormatFlags(flags map[string]bool) string {
	if len(flags) == 0 {
		return Dim("No feature flags set.") + "\n"
	}
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, EnabledPill(flags[name])})
	}
	return RenderTable([]string{"FLAG", "STATE"}, rows)
}
