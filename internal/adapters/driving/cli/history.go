package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent scan outcomes",
	Long:  `Lists the most recent URL scans, newest first, with their status.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if scanStore == nil {
		return errors.New("scan history not configured")
	}

	records, err := scanStore.History(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		cmd.Println("No scans recorded.")
		return nil
	}

	for _, rec := range records {
		when := rec.ScannedAt.Format(time.RFC3339)
		if rec.Status == "ok" {
			cmd.Printf("%s  ok     %3d page(s)  %s\n", when, rec.PagesStored, rec.URL)
			continue
		}
		cmd.Printf("%s  error  %s (%s)\n", when, rec.URL, rec.Error)
	}

	return nil
}
