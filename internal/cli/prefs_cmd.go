package cli

import (
	"fmt"

	"github.com/BigChangeApps/labs-sub003/internal/cli/formatter"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Feature flags, dark mode and brand theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreferences(p))
			return nil
		},
	}

	flag := &cobra.Command{
		Use:   "flag",
		Short: "Manage feature flags",
	}
	flag.AddCommand(newFlagSetCmd(app), newFlagListCmd(app))

	cmd.AddCommand(flag, newDarkModeCmd(app), newThemeCmd(app))
	return cmd
}

func newFlagSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME on|off",
		Short: "Turn a feature flag on or off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseOnOff(args[1])
			if err != nil {
				return err
			}
			if err := app.Preferences.SetFlag(cmd.Context(), args[0], enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], formatter.EnabledPill(enabled))
			return nil
		},
	}
}

func newFlagListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List feature flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFlags(p.Flags))
			return nil
		},
	}
}

func newDarkModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dark-mode on|off",
		Short: "Turn dark mode on or off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			if err := app.Preferences.SetDarkMode(cmd.Context(), enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dark mode %s\n", formatter.EnabledPill(enabled))
			return nil
		},
	}
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme default|bigchange|classic",
		Short:     "Set the brand theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ThemeDefault), string(domain.ThemeBigChange), string(domain.ThemeClassic)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Preferences.SetTheme(cmd.Context(), domain.BrandTheme(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
			return nil
		},
	}
}
