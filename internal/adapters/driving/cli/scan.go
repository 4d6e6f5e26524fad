package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan [url...]",
	Short: "Fetch, parse and index one or more URLs",
	Long: `Fetches each URL, extracts its text (HTML body text, or one segment
per PDF page), embeds the segments and stores them in the vector store.
Failed URLs and segments are reported but do not abort the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}

	report, err := scanService.Scan(cmd.Context(), args)
	if err != nil && report == nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanJSON {
		data, merr := json.MarshalIndent(report, "", "  ")
		if merr != nil {
			return fmt.Errorf("failed to marshal report: %w", merr)
		}
		cmd.Println(string(data))
		return err
	}

	if report.Succeeded {
		cmd.Printf("Scanned %d URL(s): %d page(s) stored, %d skipped\n",
			report.URLsScraped, report.PagesStored, report.PagesSkipped)
	} else {
		cmd.Println("Scan failed")
	}
	for _, reason := range report.Reasons {
		cmd.Printf("  - %s\n", reason)
	}

	return err
}
