package cli

import (
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/cli/formatter"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func labsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// attributeInput collects the fields of a new library attribute.
type attributeInput struct {
	Label       string
	Type        string
	Description string
	Options     string // one per line
}

func (in attributeInput) attribute() domain.Attribute {
	a := domain.Attribute{
		Label:       in.Label,
		Type:        domain.AttributeType(in.Type),
		Description: strings.TrimSpace(in.Description),
	}
	if a.Type == domain.AttrDropdown {
		a.DropdownOptions = domain.TrimmedOptions(strings.Split(in.Options, "\n"))
	}
	return a
}

func validateLabel(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.NewValidationError("label", "attribute label is required")
	}
	return nil
}

func validateOptions(s string) error {
	if len(domain.TrimmedOptions(strings.Split(s, "\n"))) == 0 {
		return domain.NewValidationError("dropdown_options", "at least one option is required")
	}
	return nil
}

func attributeTypeOptions() []huh.Option[string] {
	types := []domain.AttributeType{
		domain.AttrText, domain.AttrNumber, domain.AttrDropdown,
		domain.AttrDate, domain.AttrBoolean, domain.AttrSearch,
	}
	opts := make([]huh.Option[string], 0, len(types))
	for _, t := range types {
		opts = append(opts, huh.NewOption(string(t), string(t)))
	}
	return opts
}

// attributeForm asks for label, type and description, then for dropdown
// options when the type is a dropdown.
func attributeForm(in *attributeInput) *huh.Form {
	if in.Type == "" {
		in.Type = string(domain.AttrText)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Value(&in.Label).
				Validate(validateLabel),
			huh.NewSelect[string]().
				Title("Type").
				Options(attributeTypeOptions()...).
				Value(&in.Type),
			huh.NewInput().
				Title("Description (optional)").
				Value(&in.Description),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Dropdown options").
				Description("One option per line").
				Value(&in.Options).
				Validate(validateOptions),
		).WithHideFunc(func() bool { return in.Type != string(domain.AttrDropdown) }),
	).WithTheme(labsHuhTheme()).WithShowHelp(false)
}
