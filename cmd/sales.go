package cmd

import (
	"fmt"

	"empanada-tracker/core/utils"
	"empanada-tracker/feature/market"

	"github.com/spf13/cobra"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate [event-id] [flavor-id] [dozens]",
	Short: "Allocate baked stock to a market event",
	Long: `Allocate baked dozens of a flavor to a market event. Repeated allocations of
the same flavor to the same event add up. Allocating more than the available baked
level is rejected.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		flavorID, err := utils.ParseID(args[1])
		if err != nil {
			return err
		}
		dozens, err := utils.ParseDecimal(args[2])
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app) error {
			allocation, err := a.marketService().Allocate(cmd.Context(), eventID, flavorID, dozens)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s dozen(s) allocated, %s in total for this event\n",
				dozens, figure(allocation.Allocated))
			return nil
		})
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle [event-id] [flavor-id] [brought] [sold] [leftover]",
	Short: "Record what was sold and left over at a market event",
	Long: `Record the settlement of one allocated flavor. Brought is informational; pass
"-" when it was not counted. Sold plus leftover is checked against the allocation.
An inconsistent settlement is recorded with a warning unless strict settlement is
configured (SETTLEMENT_STRICT=true), in which case it is rejected.`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		flavorID, err := utils.ParseID(args[1])
		if err != nil {
			return err
		}
		brought, err := utils.ParseOptionalDecimal(args[2])
		if err != nil {
			return err
		}
		sold, err := utils.ParseDecimal(args[3])
		if err != nil {
			return err
		}
		leftover, err := utils.ParseDecimal(args[4])
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app) error {
			v, err := a.marketService().Settle(cmd.Context(), eventID, flavorID, market.SettleInput{
				Brought:  brought,
				Sold:     sold,
				Leftover: leftover,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settlement recorded: %s\n", v)
			return nil
		})
	},
}

var cashCmd = &cobra.Command{
	Use:   "cash [event-id] [amount]",
	Short: "Record the cash taken at a market event",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		amount, err := utils.ParseDecimal(args[1])
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app) error {
			if err := a.marketService().RecordCash(cmd.Context(), eventID, amount); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cash %s recorded for event %d\n", amount.StringFixed(2), eventID)
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(allocateCmd, settleCmd, cashCmd)
}
