package cli

import (
	"fmt"
	"io"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/internal/devices"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/spf13/cobra"
)

func (a *App) stepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Step counter",
	}
	var date string
	sync := &cobra.Command{
		Use:   "sync",
		Short: "Read the step counter and store the day's total",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			if date == "" {
				date = a.now().In(a.cfg.Location()).Format(entity.RecordDateLayout)
			}
			steps := devices.StepCounter{}.Steps(phone, date)
			rec, err := a.backend.PutDailyRecord(ctx, phone, date, &client.DailyRecordInput{TotalSteps: &steps})
			if err != nil {
				return err
			}
			return a.emit(rec, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %d steps\n", rec.RecordDate, rec.TotalSteps)
			})
		},
	}
	sync.Flags().StringVar(&date, "date", "", "record date YYYY-MM-DD, today by default")
	cmd.AddCommand(sync)
	return cmd
}
