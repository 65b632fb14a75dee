package cli

import (
	"github.com/BigChangeApps/labs-sub003/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog     service.CatalogService
	Invoices    service.InvoiceService
	Preferences service.PreferencesService

	// RunForm runs an interactive form. Nil means form.Run.
	RunForm func(form *huh.Form) error
}

func (a *App) runForm(form *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(form)
	}
	return form.Run()
}

// NewRootCmd creates the top-level "labs" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "labs",
		Short:         "Asset category configuration and invoice line selection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCategoryCmd(app),
		newAttributeCmd(app),
		newManufacturerCmd(app),
		newInvoiceCmd(app),
		newPrefsCmd(app),
		newSeedCmd(app),
	)

	return root
}
