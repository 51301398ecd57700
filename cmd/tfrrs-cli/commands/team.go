package commands

import (
	"fmt"

	"tfrrs-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(teamCmd)
}

var teamCmd = &cobra.Command{
	Use:   "team <tf|xc> <slug>",
	Short: "Scrapes a team page and prints its roster.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		roster, err := client.GetTeam(cmd.Context(), args[0], args[1])
		if err != nil {
			serviceutil.Fatal("failed to scrape team", err)
		}

		fmt.Printf("%s (%s)\n", roster.Name, roster.Sport)
		if roster.Conference != "" {
			fmt.Printf("%s | %s\n", roster.Conference, roster.Region)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Athlete", "ID", "Year"})
		for _, entry := range roster.Roster {
			t.AppendRow(table.Row{entry.Name, entry.AthleteID, entry.Year})
		}
		t.Render()
	},
}
