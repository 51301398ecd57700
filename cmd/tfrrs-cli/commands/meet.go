package commands

import (
	"fmt"

	"tfrrs-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	meetSport  *string
	meetGender *string
)

func init() {
	meetSport = meetCmd.Flags().String("sport", "tf", `Either "tf" or "xc".`)
	meetGender = meetCmd.Flags().String("gender", "", `Either "m" or "f", required for track meets.`)
	rootCmd.AddCommand(meetCmd)
}

var meetCmd = &cobra.Command{
	Use:   "meet <id> [--sport tf|xc] [--gender m|f]",
	Short: "Scrapes a meet's results, one table per event.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		meet, err := client.GetMeet(cmd.Context(), args[0], *meetSport, *meetGender)
		if err != nil {
			serviceutil.Fatal("failed to scrape meet", err)
		}

		fmt.Printf("%s\n%s | %s\n", meet.Name, meet.Date, meet.Location)
		for _, event := range meet.Events {
			label := event.Name
			if event.Round != "" {
				label = fmt.Sprintf("%s (%s", label, event.Round)
				if event.Heat != nil {
					label = fmt.Sprintf("%s, heat %d", label, *event.Heat)
				}
				label += ")"
			}
			fmt.Println(label)

			t := newTable()
			t.AppendHeader(table.Row{"Place", "Athlete", "Year", "Team", "Time"})
			for _, p := range event.Results {
				t.AppendRow(table.Row{
					p.Place, p.AthleteName, p.Year, p.TeamName, markWithSeconds(p.Time),
				})
			}
			t.Render()
		}
	},
}
