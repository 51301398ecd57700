package commands

import (
	"fmt"

	"tfrrs-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(athleteCmd)
}

var athleteCmd = &cobra.Command{
	Use:   "athlete <id>",
	Short: "Scrapes an athlete profile and prints their performances.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		profile, err := client.GetAthlete(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to scrape athlete", err)
		}

		fmt.Printf("%s (%s)\n", profile.Name, profile.ClassYear)
		if profile.TeamName != "" {
			fmt.Printf("%s [%s] %s\n", profile.TeamName, profile.TeamSlug, profile.Gender)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Meet", "Date", "Event", "Mark", "Place", "Round"})
		for _, p := range profile.Performances {
			t.AppendRow(table.Row{
				p.MeetName, p.Date, p.Event, markWithSeconds(p.Mark), p.Place, p.Round,
			})
		}
		t.Render()
	},
}
