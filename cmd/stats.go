package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review activity for the last two weeks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		const days = 14
		now := time.Now()
		from := now.AddDate(0, 0, -(days - 1)).Format(time.DateOnly)
		to := now.Format(time.DateOnly)

		activity, err := st.ActivityRange(cmd.Context(), from, to)
		if err != nil {
			return fmt.Errorf("load activity: %w", err)
		}

		counts := make(map[string]int, len(activity))
		maxCount := 0
		total := 0
		for _, a := range activity {
			counts[a.Day] = a.Count
			total += a.Count
			if a.Count > maxCount {
				maxCount = a.Count
			}
		}

		if total == 0 {
			fmt.Println("No reviews in the last two weeks.")
			return nil
		}

		const barMax = 40
		for i := days - 1; i >= 0; i-- {
			day := now.AddDate(0, 0, -i)
			count := counts[day.Format(time.DateOnly)]
			barLen := 0
			if maxCount > 0 {
				barLen = count * barMax / maxCount
			}
			if count > 0 && barLen == 0 {
				barLen = 1
			}
			fmt.Printf("%s  %-*s %d\n", day.Format("Jan 02"), barMax, strings.Repeat("█", barLen), count)
		}
		fmt.Printf("\n%d reviews total.\n", total)
		return nil
	},
}
