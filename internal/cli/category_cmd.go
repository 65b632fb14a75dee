package cli

import (
	"fmt"
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage the asset category tree",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryShowCmd(app),
		newCategoryAddCmd(app),
		newCategoryRenameCmd(app),
		newCategoryDeleteCmd(app),
		newCategoryToggleCmd(app),
		newCategoryAttachCmd(app),
		newCategoryDetachCmd(app),
		newCategoryInheritCmd(app),
	)

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the category tree with enabled attribute counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Catalog.View(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategoryTree(view.Catalog, view.Badges))
			return nil
		},
	}
}

func newCategoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CATEGORY_ID",
		Short: "Show the effective attributes of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := app.Catalog.EffectiveAttributes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			view, err := app.Catalog.View(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEffectiveAttributes(view.Catalog, args[0], attrs))
			return nil
		},
	}
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var name, parent string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category, at the root or under --parent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog.AddCategory(cmd.Context(), name, parent)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %s %s\n", cat.Name, formatter.Dim(cat.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent category ID (blank for a root)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename CATEGORY_ID NAME",
		Short: "Rename a category",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args[1:], " ")
			if err := app.Catalog.RenameCategory(cmd.Context(), args[0], name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], strings.TrimSpace(name))
			return nil
		},
	}
}

func newCategoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete CATEGORY_ID",
		Short: "Delete a category and all of its descendants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Catalog.DeleteCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d categories\n", len(removed))
			return nil
		},
	}
}

func newCategoryToggleCmd(app *App) *cobra.Command {
	var attr string
	var system bool

	cmd := &cobra.Command{
		Use:   "toggle CATEGORY_ID",
		Short: "Flip an attribute on or off for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.ToggleAttribute(cmd.Context(), args[0], attr, system); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Toggled %s on %s\n", attr, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&attr, "attr", "", "Attribute ID")
	cmd.Flags().BoolVar(&system, "system", false, "Toggle in the system attribute list")
	_ = cmd.MarkFlagRequired("attr")

	return cmd
}

func newCategoryAttachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "attach CATEGORY_ID ATTRIBUTE_ID",
		Short: "Attach a library attribute to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.AttachAttribute(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Attached %s to %s\n", args[1], args[0])
			return nil
		},
	}
}

func newCategoryDetachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detach CATEGORY_ID ATTRIBUTE_ID",
		Short: "Detach a custom attribute from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.DetachAttribute(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Detached %s from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newCategoryInheritCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inherit on|off",
		Short: "Turn parent attribute inheritance on or off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.SetInheritance(cmd.Context(), enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Parent inheritance %s\n", formatter.EnabledPill(enabled))
			return nil
		},
	}
}
