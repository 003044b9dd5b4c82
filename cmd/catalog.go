package cmd

import (
	"fmt"
	"time"

	"empanada-tracker/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flavorCmd = &cobra.Command{
	Use:   "flavor",
	Short: "Manage empanada flavors",
}

var flavorAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a flavor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			f, err := a.store.AddFlavor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.log.Info("Added flavor", zap.Uint("flavor_id", f.ID), zap.String("flavor", f.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "Flavor %q added with id %d\n", f.Name, f.ID)
			return nil
		})
	},
}

var flavorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List flavors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			flavors, err := a.store.ListFlavors(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tFLAVOR")
			for _, f := range flavors {
				fmt.Fprintf(tw, "%d\t%s\n", f.ID, f.Name)
			}
			return tw.Flush()
		})
	},
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Manage markets and market events",
}

var marketAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a market",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			m, err := a.store.AddMarket(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.log.Info("Added market", zap.Uint("market_id", m.ID), zap.String("market", m.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "Market %q added with id %d\n", m.Name, m.ID)
			return nil
		})
	},
}

var marketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List markets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			markets, err := a.store.ListMarkets(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tMARKET")
			for _, m := range markets {
				fmt.Fprintf(tw, "%d\t%s\n", m.ID, m.Name)
			}
			return tw.Flush()
		})
	},
}

var marketEventCmd = &cobra.Command{
	Use:   "event [market-id] [YYYY-MM-DD]",
	Short: "Schedule a market event",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		marketID, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		date, err := utils.ParseDate(args[1], time.Now())
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app) error {
			event, err := a.marketService().CreateEvent(cmd.Context(), marketID, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Event %d scheduled at %s on %s\n", event.ID, event.MarketName, day(event.EventDate))
			return nil
		})
	},
}

func init() {
	flavorCmd.AddCommand(flavorAddCmd, flavorListCmd)
	marketCmd.AddCommand(marketAddCmd, marketListCmd, marketEventCmd)
	RootCmd.AddCommand(flavorCmd, marketCmd)
}
