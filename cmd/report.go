package cmd

import (
	"fmt"

	"empanada-tracker/core/reconcile"
	"empanada-tracker/core/utils"
	"empanada-tracker/feature/report"

	"github.com/spf13/cobra"
)

var (
	reportJSON    bool
	reportArchive bool
	eventsLimit   int
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show wrapped-unbaked and available baked levels per flavor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			inv, err := a.reportService().Inventory(cmd.Context())
			if err != nil {
				return err
			}
			if err := archiveIfRequested(cmd, a, report.KindInventory, inv); err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), inv)
			}

			w := cmd.OutOrStdout()
			heading(w, "Inventory")
			tw := newTable(w)
			fmt.Fprintln(tw, "FLAVOR\tWRAPPED (UNBAKED)\tBAKED (AVAILABLE)")
			for _, name := range inv.Flavors() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, inv.WrappedUnbaked[name], inv.AvailableBaked[name])
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			printAnomalies(cmd, inv.Anomalies)
			return nil
		})
	},
}

var eventCmd = &cobra.Command{
	Use:   "event [event-id]",
	Short: "Show the settlement report of a market event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app) error {
			rep, err := a.reportService().Event(cmd.Context(), eventID)
			if err != nil {
				return err
			}
			if err := archiveIfRequested(cmd, a, report.KindEvent, rep); err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), rep)
			}

			w := cmd.OutOrStdout()
			heading(w, fmt.Sprintf("%s, %s (%s)", rep.Event.MarketName, day(rep.Event.EventDate), rep.State))
			tw := newTable(w)
			fmt.Fprintln(tw, "FLAVOR\tALLOCATED\tBROUGHT\tSOLD\tLEFTOVER\tSTATUS")
			for _, l := range rep.Lines {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					l.Flavor, figure(l.Allocated), figure(l.Brought), figure(l.Sold), figure(l.Leftover), l.Validation)
			}
			fmt.Fprintf(tw, "TOTAL\t%s\t\t%s\t%s\t\n", rep.Totals.TotalAllocated, rep.Totals.TotalSold, rep.Totals.TotalLeftover)
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(w, "Cash: %s\n", money(rep.Event.Cash))
			return nil
		})
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the most recent market events with cash and sales totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			limit := eventsLimit
			if limit <= 0 {
				limit = a.cfg.Report.RecentLimit
			}

			events, err := a.reportService().RecentEvents(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if err := archiveIfRequested(cmd, a, report.KindEvents, events); err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), events)
			}

			w := cmd.OutOrStdout()
			heading(w, "Recent Market Events")
			tw := newTable(w)
			fmt.Fprintln(tw, "ID\tDATE\tMARKET\tSTATE\tALLOCATED\tSOLD\tLEFTOVER\tCASH")
			for _, e := range events {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Event.ID, day(e.Event.EventDate), e.Event.MarketName, e.State,
					e.Totals.TotalAllocated, e.Totals.TotalSold, e.Totals.TotalLeftover, money(e.Event.Cash))
			}
			return tw.Flush()
		})
	},
}

var tapasCmd = &cobra.Command{
	Use:   "tapas",
	Short: "Show tapas production totals, overall and per week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			rep, err := a.reportService().Tapas(cmd.Context())
			if err != nil {
				return err
			}
			if err := archiveIfRequested(cmd, a, report.KindTapas, rep); err != nil {
				return err
			}
			if reportJSON {
				return printJSON(cmd.OutOrStdout(), rep)
			}

			w := cmd.OutOrStdout()
			heading(w, "Tapas Production")
			fmt.Fprintf(w, "Regular: %s  Ghee: %s  Total: %s\n",
				rep.Summary.TotalRegular, rep.Summary.TotalGhee, rep.Summary.GrandTotal)

			heading(w, "Weekly Totals")
			tw := newTable(w)
			fmt.Fprintln(tw, "WEEK\tREGULAR\tGHEE\tTOTAL")
			for _, wk := range rep.Weekly {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", wk.Week, wk.Regular, wk.Ghee, wk.Total)
			}
			return tw.Flush()
		})
	},
}

func printAnomalies(cmd *cobra.Command, anomalies []reconcile.Anomaly) {
	if len(anomalies) == 0 {
		return
	}
	w := cmd.OutOrStdout()
	heading(w, "Anomalies")
	for _, an := range anomalies {
		switch an.Kind {
		case reconcile.AnomalyUnknownFlavor:
			fmt.Fprintf(w, "%s row references unknown flavor %d (%s dozen(s) skipped)\n", an.Source, an.FlavorID, an.Quantity)
		default:
			fmt.Fprintf(w, "%s is negative for %s: %s\n", an.Pool, an.Flavor, an.Quantity)
		}
	}
}

// archiveIfRequested stores v when --archive is set. The key goes to stderr so --json output stays clean.
func archiveIfRequested(cmd *cobra.Command, a *app, kind string, v any) error {
	if !reportArchive {
		return nil
	}
	archiver, err := a.archiver()
	if err != nil {
		return err
	}
	key, err := archiver.Archive(cmd.Context(), kind, v)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Archived to %s/%s\n", a.cfg.Storage.Bucket, key)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{inventoryCmd, eventCmd, eventsCmd, tapasCmd} {
		c.Flags().BoolVar(&reportJSON, "json", false, "Print the report as JSON")
		c.Flags().BoolVar(&reportArchive, "archive", false, "Store the report in object storage")
	}
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 0, "Number of events to show (defaults to REPORT_RECENT_LIMIT)")

	RootCmd.AddCommand(inventoryCmd, eventCmd, eventsCmd, tapasCmd)
}
