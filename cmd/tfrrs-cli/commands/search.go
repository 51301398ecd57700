package commands

import (
	"tfrrs-backend/lib/scrapers/tfrrs"
	"tfrrs-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <athlete|team|meet> <query>",
	Short: "Searches tfrrs for athletes, teams or meets.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		results, err := client.Search(cmd.Context(), tfrrs.SearchKind(args[0]), args[1])
		if err != nil {
			serviceutil.Fatal("failed to search", err)
		}

		t := newTable()
		switch {
		case len(results.Athletes) > 0:
			t.AppendHeader(table.Row{"Athlete", "ID", "Team"})
			for _, hit := range results.Athletes {
				t.AppendRow(table.Row{hit.Name, hit.AthleteID, hit.TeamName})
			}
		case len(results.Teams) > 0:
			t.AppendHeader(table.Row{"Team", "Slug", "Sport", "Gender"})
			for _, hit := range results.Teams {
				t.AppendRow(table.Row{hit.Name, hit.Slug, hit.Sport, hit.Gender})
			}
		case len(results.Meets) > 0:
			t.AppendHeader(table.Row{"Meet", "ID", "Date", "Sport"})
			for _, hit := range results.Meets {
				t.AppendRow(table.Row{hit.Name, hit.MeetID, hit.Date, hit.Sport})
			}
		}
		t.Render()
	},
}
