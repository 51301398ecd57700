package commands

import (
	"context"
	"fmt"
	"os"

	"tfrrs-backend/lib/restyutil"
	"tfrrs-backend/lib/scrapers/tfrrs"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP(
		"verbose", "v", false,
		"Dump raw http traffic to .dev/resty/tfrrs.",
	)
}

var rootCmd = &cobra.Command{
	Use:   "tfrrs-cli",
	Short: "tfrrs-cli scrapes athlete, team, meet and search pages from tfrrs.org.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() *tfrrs.Client {
	client := tfrrs.NewClient(tfrrs.ClientOptions{})
	if *verbose {
		client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/tfrrs"))
	}
	return client
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// renders a mark alongside its value in seconds when the mark is a
// parseable time, otherwise just the mark (field marks, DNF and friends)
func markWithSeconds(mark string) string {
	seconds, _, ok := tfrrs.NormalizeTime(mark, false)
	if !ok {
		return mark
	}
	return fmt.Sprintf("%s (%.2fs)", mark, seconds)
}
