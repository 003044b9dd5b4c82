package cmd

import (
	"fmt"

	"empanada-tracker/feature/report"

	"github.com/spf13/cobra"
)

var archivesCmd = &cobra.Command{
	Use:   "archives",
	Short: "Browse reports archived in object storage",
}

var archivesListCmd = &cobra.Command{
	Use:       "list [kind]",
	Short:     "List archived reports of a kind, newest first",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{report.KindInventory, report.KindEvent, report.KindEvents, report.KindTapas},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			archiver, err := a.archiver()
			if err != nil {
				return err
			}
			reports, err := archiver.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "KEY\tSIZE\tSTORED")
			for _, r := range reports {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Key, r.Size, r.LastModified.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		})
	},
}

var archivesShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Print an archived report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			archiver, err := a.archiver()
			if err != nil {
				return err
			}
			data, err := archiver.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		})
	},
}

func init() {
	archivesCmd.AddCommand(archivesListCmd, archivesShowCmd)
	RootCmd.AddCommand(archivesCmd)
}
