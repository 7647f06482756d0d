package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/limbo/fittrack/internal/aggregate"
	"github.com/spf13/cobra"
)

func (a *App) chartCmd() *cobra.Command {
	var (
		mode string
		days int
	)
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Steps, calories, exercise time and weight over a timeframe",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := aggregate.ParseMode(mode)
			if err != nil {
				return err
			}
			if err = aggregate.ValidTimeframe(days); err != nil {
				return err
			}
			phone, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			records, err := a.backend.ListDailyRecords(cmd.Context(), phone)
			if err != nil {
				return err
			}
			offset := time.Duration(a.cfg.TZOffsetHours) * time.Hour
			chart, err := aggregate.BuildChart(records, m, days, offset, a.now())
			if err != nil {
				return err
			}
			return a.emit(chart, func(w io.Writer) { renderChart(w, chart) })
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(aggregate.ModeDaily), "bucketing: daily, 3-day or weekly")
	cmd.Flags().IntVar(&days, "days", 7, "timeframe in days: 7, 30 or 90")
	return cmd
}

func renderChart(w io.Writer, c *aggregate.Chart) {
	fmt.Fprintf(w, "Last %d days, %s\n", c.Days, c.Mode)
	if len(c.Points) == 0 {
		fmt.Fprintln(w, "  no records in this timeframe")
		return
	}
	var maxSteps, maxCalories, maxDuration int
	var maxWeight float64
	for _, p := range c.Points {
		maxSteps = max(maxSteps, p.TotalSteps)
		maxCalories = max(maxCalories, p.TotalCaloriesBurned)
		maxDuration = max(maxDuration, p.ExerciseDurationMinutes)
		maxWeight = max(maxWeight, p.Weight)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "\tdate\tsteps\tkcal\tmin\tkg\t")
	for i, p := range c.Points {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.1f\t\n", c.Labels[i], p.RecordDate, p.TotalSteps, p.TotalCaloriesBurned, p.ExerciseDurationMinutes, p.Weight)
	}
	fmt.Fprintf(tw, "axis max\t\t%g\t%g\t%g\t%g\t\n",
		aggregate.RoundToSignificant(float64(maxSteps)),
		aggregate.RoundToSignificant(float64(maxCalories)),
		aggregate.RoundToSignificant(float64(maxDuration)),
		aggregate.RoundToSignificant(maxWeight),
	)
	tw.Flush()
}
