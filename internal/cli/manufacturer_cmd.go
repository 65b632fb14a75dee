package cli

import (
	"fmt"
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newManufacturerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "manufacturer",
		Aliases: []string{"mfr"},
		Short:   "Manage manufacturers and their models",
	}

	model := &cobra.Command{
		Use:   "model",
		Short: "Manage the models of a manufacturer",
	}
	model.AddCommand(
		newModelAddCmd(app),
		newModelEditCmd(app),
		newModelDeleteCmd(app),
	)

	cmd.AddCommand(
		newManufacturerListCmd(app),
		newManufacturerAddCmd(app),
		newManufacturerEditCmd(app),
		newManufacturerDeleteCmd(app),
		model,
	)

	return cmd
}

func newManufacturerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List manufacturers and models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Catalog.View(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatManufacturers(view.Catalog.Manufacturers()))
			return nil
		},
	}
}

func newManufacturerAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a manufacturer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Catalog.AddManufacturer(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added manufacturer %s %s\n", m.Name, formatter.Dim(m.ID))
			return nil
		},
	}
}

func newManufacturerEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit MANUFACTURER_ID NAME",
		Short: "Rename a manufacturer",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.EditManufacturer(cmd.Context(), args[0], strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated manufacturer %s\n", args[0])
			return nil
		},
	}
}

func newManufacturerDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete MANUFACTURER_ID",
		Short: "Delete a manufacturer and its models",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Catalog.DeleteManufacturer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted manufacturer %s and %d models\n", args[0], n)
			return nil
		},
	}
}

func newModelAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add MANUFACTURER_ID NAME",
		Short: "Add a model",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Catalog.AddModel(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added model %s %s\n", m.Name, formatter.Dim(m.ID))
			return nil
		},
	}
}

func newModelEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit MANUFACTURER_ID MODEL_ID NAME",
		Short: "Rename a model",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.EditModel(cmd.Context(), args[0], args[1], strings.Join(args[2:], " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated model %s\n", args[1])
			return nil
		},
	}
}

func newModelDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete MANUFACTURER_ID MODEL_ID",
		Short: "Delete a model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.DeleteModel(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted model %s\n", args[1])
			return nil
		},
	}
}
