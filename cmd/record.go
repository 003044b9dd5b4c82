package cmd

import (
	"fmt"
	"time"

	"empanada-tracker/core/models"
	"empanada-tracker/core/utils"

	"github.com/spf13/cobra"
)

var (
	recordDate  string
	recordNotes string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a production batch",
	Long: `Record wrapped, baked or tapas batches. Quantities are in dozens and may be
fractional. The batch date defaults to today.`,
}

var recordWrappedCmd = &cobra.Command{
	Use:   "wrapped [flavor-id] [dozens]",
	Short: "Record a wrapped batch",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordStage(cmd, args, models.StageWrapped)
	},
}

var recordBakedCmd = &cobra.Command{
	Use:   "baked [flavor-id] [dozens]",
	Short: "Record a baked batch",
	Long:  `Record a baked batch. Baking more than the flavor's wrapped-unbaked level is rejected.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordStage(cmd, args, models.StageBaked)
	},
}

var recordTapasCmd = &cobra.Command{
	Use:   "tapas [regular-dozens] [ghee-dozens]",
	Short: "Record a tapas batch",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		regular, err := utils.ParseDecimal(args[0])
		if err != nil {
			return err
		}
		ghee, err := utils.ParseDecimal(args[1])
		if err != nil {
			return err
		}
		date, err := utils.ParseDate(recordDate, time.Now())
		if err != nil {
			return err
		}

		return withApp(cmd.Context(), func(a *app) error {
			entry, err := a.productionService().RecordTapas(cmd.Context(), date, regular, ghee, recordNotes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tapas batch %d recorded: %s regular, %s ghee on %s\n",
				entry.ID, regular, ghee, day(date))
			return nil
		})
	},
}

func runRecordStage(cmd *cobra.Command, args []string, stage models.Stage) error {
	flavorID, err := utils.ParseID(args[0])
	if err != nil {
		return err
	}
	dozens, err := utils.ParseDecimal(args[1])
	if err != nil {
		return err
	}
	date, err := utils.ParseDate(recordDate, time.Now())
	if err != nil {
		return err
	}

	return withApp(cmd.Context(), func(a *app) error {
		svc := a.productionService()

		var entry models.ProductionEntry
		if stage == models.StageBaked {
			entry, err = svc.RecordBaked(cmd.Context(), flavorID, date, dozens)
		} else {
			entry, err = svc.RecordWrapped(cmd.Context(), flavorID, date, dozens)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s batch %d recorded: %s dozen(s) on %s\n", stage, entry.ID, dozens, day(date))
		return nil
	})
}

func init() {
	for _, c := range []*cobra.Command{recordWrappedCmd, recordBakedCmd, recordTapasCmd} {
		c.Flags().StringVar(&recordDate, "date", "", "Batch date (YYYY-MM-DD), defaults to today")
	}
	recordTapasCmd.Flags().StringVar(&recordNotes, "notes", "", "Free-form notes")

	recordCmd.AddCommand(recordWrappedCmd, recordBakedCmd, recordTapasCmd)
	RootCmd.AddCommand(recordCmd)
}
