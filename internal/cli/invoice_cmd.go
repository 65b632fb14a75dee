package cli

import (
	"fmt"
	"io"

	"github.com/BigChangeApps/labs-sub003/internal/cli/formatter"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/fixtures"
	"github.com/BigChangeApps/labs-sub003/internal/service"
	"github.com/spf13/cobra"
)

var (
	viewModeNames  = []string{string(domain.ViewSummary), string(domain.ViewPartial), string(domain.ViewDetailed)}
	breakdownNames = []string{string(domain.BreakdownContact), string(domain.BreakdownSite)}
)

func newInvoiceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoice",
		Aliases: []string{"inv"},
		Short:   "Select the job lines that go on an invoice",
	}

	cmd.AddCommand(
		newInvoiceInitCmd(app),
		newInvoiceListCmd(app),
		newInvoiceShowCmd(app),
		newInvoiceTotalsCmd(app),
		newInvoiceToggleLineCmd(app),
		newInvoiceToggleJobCmd(app),
		newInvoiceToggleCategoryCmd(app),
		newInvoiceModeCmd(app),
		newInvoiceBreakdownCmd(app),
		newInvoiceUpdateLinesCmd(app),
		newInvoiceGroupLinesCmd(app),
		newInvoiceToggleGroupLineCmd(app),
		newInvoiceDisposeCmd(app),
	)

	return cmd
}

// printInvoice writes the selection followed by the totals.
func printInvoice(w io.Writer, v *service.InvoiceView) {
	fmt.Fprint(w, formatter.FormatSelection(v.State, v.Counts))
	fmt.Fprintln(w, formatter.FormatTotals(v.Totals))
}

func newInvoiceInitCmd(app *App) *cobra.Command {
	var jobsFile string
	var mode *enumValue

	cmd := &cobra.Command{
		Use:   "init INVOICE_ID",
		Short: "Start an invoice draft from a jobs file, or the demo jobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var jobs []domain.Job
			var err error
			if jobsFile != "" {
				jobs, err = fixtures.LoadJobsFile(jobsFile)
			} else {
				jobs, err = fixtures.DemoJobs()
			}
			if err != nil {
				return err
			}

			v, err := app.Invoices.Init(cmd.Context(), args[0], jobs, domain.ViewMode(mode.String()))
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobsFile, "jobs", "", "YAML file of jobs (default: demo jobs)")
	mode = enumFlag(cmd.Flags(), "mode", "", "View mode, blank for the configured default", viewModeNames...)

	return cmd
}

func newInvoiceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List invoice drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := app.Invoices.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDraftList(drafts))
			return nil
		},
	}
}

func newInvoiceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show INVOICE_ID",
		Short: "Show every job line and its selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Invoices.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newInvoiceTotalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "totals INVOICE_ID",
		Short: "Show subtotal, VAT and total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Invoices.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTotals(v.Totals))
			return nil
		},
	}
}

func newInvoiceToggleLineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-line INVOICE_ID JOB_ID LINE_ID",
		Short: "Flip the selection of one line",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Invoices.ToggleLine(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newInvoiceToggleJobCmd(app *App) *cobra.Command {
	var include, exclude bool

	cmd := &cobra.Command{
		Use:   "toggle-job INVOICE_ID JOB_ID",
		Short: "Exclude a job, or include it again restoring its previous lines",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Invoices.ToggleJob(cmd.Context(), args[0], args[1], include)
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().BoolVar(&include, "include", false, "Include the job")
	cmd.Flags().BoolVar(&exclude, "exclude", false, "Exclude the job")
	cmd.MarkFlagsMutuallyExclusive("include", "exclude")
	cmd.MarkFlagsOneRequired("include", "exclude")

	return cmd
}

func newInvoiceToggleCategoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-category INVOICE_ID JOB_ID labour|materials|other",
		Short: "Select or deselect every line of a category in a job",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Invoices.ToggleCategory(cmd.Context(), args[0], args[1], domain.LineCategory(args[2]))
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newInvoiceModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "mode INVOICE_ID summary|partial|detailed",
		Short:     "Set the invoice level of detail",
		Args:      cobra.ExactArgs(2),
		ValidArgs: viewModeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Invoices.SetViewMode(cmd.Context(), args[0], domain.ViewMode(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBreakdown(v.Breakdown, v.State.ViewMode))
			return nil
		},
	}
}

func newInvoiceBreakdownCmd(app *App) *cobra.Command {
	var by *enumValue

	cmd := &cobra.Command{
		Use:   "breakdown INVOICE_ID",
		Short: "Show the invoice as printed, grouped by contact or site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v *service.InvoiceView
			var err error
			if cmd.Flags().Changed("by") {
				v, err = app.Invoices.SetBreakdown(cmd.Context(), args[0], domain.BreakdownLevel(by.String()))
			} else {
				v, err = app.Invoices.Get(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.ModeBadge(v.State.ViewMode, v.State.Breakdown))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatBreakdown(v.Breakdown, v.State.ViewMode))
			fmt.Fprintln(out, formatter.FormatTotals(v.Totals))
			return nil
		},
	}

	by = enumFlag(cmd.Flags(), "by", string(domain.BreakdownContact), "Group by", breakdownNames...)

	return cmd
}

func newInvoiceUpdateLinesCmd(app *App) *cobra.Command {
	var jobID, file string

	cmd := &cobra.Command{
		Use:   "update-lines INVOICE_ID",
		Short: "Replace the lines of a job, keeping the selection of existing lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := fixtures.LoadLineSeedsFile(file)
			if err != nil {
				return err
			}
			v, err := app.Invoices.UpdateLines(cmd.Context(), args[0], jobID, seeds)
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobID, "job", "", "Job ID")
	cmd.Flags().StringVar(&file, "file", "", "YAML file of line items")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newInvoiceGroupLinesCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "group-lines INVOICE_ID",
		Short: "Set the invoice-level lines that belong to no job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := fixtures.LoadLineSeedsFile(file)
			if err != nil {
				return err
			}
			v, err := app.Invoices.SetGroupLines(cmd.Context(), args[0], seeds)
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML file of line items")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newInvoiceToggleGroupLineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-group-line INVOICE_ID LINE_ID",
		Short: "Flip the selection of an invoice-level line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Invoices.ToggleGroupLine(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newInvoiceDisposeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dispose INVOICE_ID",
		Short: "Discard an invoice draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Invoices.Dispose(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Disposed %s\n", args[0])
			return nil
		},
	}
}
