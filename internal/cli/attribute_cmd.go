package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/cli/formatter"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAttributeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attribute",
		Aliases: []string{"attr"},
		Short:   "Manage the attribute library",
	}

	cmd.AddCommand(
		newAttributeListCmd(app),
		newAttributeAddCmd(app),
		newAttributeDeleteCmd(app),
	)

	return cmd
}

func newAttributeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List library attributes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Catalog.View(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAttributeLibrary(view.Catalog.Attributes()))
			return nil
		},
	}
}

func newAttributeAddCmd(app *App) *cobra.Command {
	var in attributeInput
	var options []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom attribute to the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := app.runForm(attributeForm(&in)); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
					return err
				}
			} else {
				in.Options = strings.Join(options, "\n")
			}

			attr, err := app.Catalog.AddCoreAttribute(cmd.Context(), in.attribute())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added attribute %s (%s) %s\n", attr.Label, attr.Type, formatter.Dim(attr.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Label, "label", "", "Attribute label")
	cmd.Flags().StringVar(&in.Type, "type", string(domain.AttrText), "Attribute type (text|number|dropdown|date|boolean|search)")
	cmd.Flags().StringVar(&in.Description, "description", "", "Help text")
	cmd.Flags().StringArrayVar(&options, "option", nil, "Dropdown option (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the attribute in a form")

	return cmd
}

func newAttributeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ATTRIBUTE_ID",
		Short: "Delete an attribute and remove it from every category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.DeleteAttribute(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted attribute %s\n", args[0])
			return nil
		},
	}
}
