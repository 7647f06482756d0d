package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/limbo/fittrack/internal/aggregate"
	"github.com/limbo/fittrack/internal/flow"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/spf13/cobra"
)

const activityDateLayout = "2006-01-02 15:04"

type draftFlags struct {
	exerciseType string
	duration     string
	calories     string
	intensity    string
	rating       string
	distance     string
	date         string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.exerciseType, "type", "", "exercise type, e.g. Running")
	cmd.Flags().StringVar(&f.duration, "duration", "", "duration in minutes")
	cmd.Flags().StringVar(&f.calories, "calories", "", "calories burned; calculated by the AI service when omitted")
	cmd.Flags().StringVar(&f.intensity, "intensity", "", "intensity 1-10")
	cmd.Flags().StringVar(&f.rating, "rating", "", "rating 1-5")
	cmd.Flags().StringVar(&f.distance, "distance", "", "distance from home in km")
	cmd.Flags().StringVar(&f.date, "date", "", "local date and time, "+activityDateLayout)
}

// apply copies the flags that were set onto d.
func (f *draftFlags) apply(cmd *cobra.Command, d *flow.ActivityDraft, loc *time.Location) error {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("type", &d.ExerciseType, f.exerciseType)
	set("duration", &d.DurationMinutes, f.duration)
	set("calories", &d.CaloriesBurned, f.calories)
	set("intensity", &d.Intensity, f.intensity)
	set("rating", &d.Rating, f.rating)
	set("distance", &d.DistanceFromHome, f.distance)
	if flags.Changed("date") {
		t, err := time.ParseInLocation(activityDateLayout, f.date, loc)
		if err != nil {
			return errors.New("--date must look like " + activityDateLayout)
		}
		d.ExerciseDate = &t
	}
	return nil
}

func (a *App) activitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"activity"},
		Short:   "Manage logged activities",
	}
	cmd.AddCommand(
		a.activitiesListCmd(),
		a.activitiesAddCmd(),
		a.activitiesEditCmd(),
		a.activitiesDeleteCmd(),
		a.activitiesSyncCmd(),
	)
	return cmd
}

func (a *App) activitiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List activities grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			exercises, err := a.backend.ListExercises(cmd.Context(), phone)
			if err != nil {
				return err
			}
			sections := aggregate.GroupByLocalDate(exercises, a.cfg.Location())
			return a.emit(sections, func(w io.Writer) { renderSections(w, sections, a) })
		},
	}
}

func (a *App) activitiesAddCmd() *cobra.Command {
	f := &draftFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log an activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			draft := flow.NewActivityDraft()
			draft.DistanceFromHome = strconv.FormatFloat(flow.RandomDistance(rand.New(rand.NewSource(a.now().UnixNano()))), 'f', 1, 64)
			if err = f.apply(cmd, draft, a.cfg.Location()); err != nil {
				return err
			}
			if draft.CaloriesBurned == "" {
				if _, err = draft.Calculate(ctx, a.ai); err != nil {
					return err
				}
			}
			return a.submitDraft(ctx, phone, draft, 0)
		},
	}
	f.register(cmd)
	return cmd
}

func (a *App) activitiesEditCmd() *cobra.Command {
	f := &draftFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a logged activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := a.backend.GetExercise(ctx, id)
			if err != nil {
				return err
			}
			draft := flow.DraftFromExercise(current)
			if err = f.apply(cmd, draft, a.cfg.Location()); err != nil {
				return err
			}
			recalc := cmd.Flags().Changed("type") || cmd.Flags().Changed("duration") || cmd.Flags().Changed("intensity")
			if recalc && !cmd.Flags().Changed("calories") {
				if _, err = draft.Calculate(ctx, a.ai); err != nil {
					return err
				}
			}
			return a.submitDraft(ctx, phone, draft, id, current.ExerciseDate)
		},
	}
	f.register(cmd)
	return cmd
}

// submitDraft creates (id 0) or updates an activity and refreshes the daily
// totals of every date it touched.
func (a *App) submitDraft(ctx context.Context, phone string, draft *flow.ActivityDraft, id int64, previous ...time.Time) error {
	in, err := draft.ToExercise(phone)
	if err != nil {
		return err
	}
	var saved *entity.Exercise
	if id == 0 {
		saved, err = a.backend.CreateExercise(ctx, in)
	} else {
		saved, err = a.backend.UpdateExercise(ctx, id, in)
	}
	if err != nil {
		return err
	}
	a.syncDates(ctx, phone, append(previous, saved.ExerciseDate)...)
	return a.emit(saved, func(w io.Writer) {
		fmt.Fprintf(w, "Saved activity #%d: %s, %d min, %d kcal\n", saved.ID, saved.ExerciseType, saved.DurationMinutes, saved.CaloriesBurned)
	})
}

func (a *App) activitiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a logged activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := a.backend.GetExercise(ctx, id)
			if err != nil {
				return err
			}
			if err = a.backend.DeleteExercise(ctx, id); err != nil {
				return err
			}
			a.syncDates(ctx, phone, current.ExerciseDate)
			return a.emit(map[string]int64{"deleted": id}, func(w io.Writer) {
				fmt.Fprintf(w, "Deleted activity #%d\n", id)
			})
		},
	}
}

func (a *App) activitiesSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Recompute daily calorie and duration totals from all activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			exercises, err := a.backend.ListExercises(ctx, phone)
			if err != nil {
				return err
			}
			res := aggregate.SyncDailyTotals(ctx, a.backend, phone, aggregate.DailyTotals(exercises, a.cfg.Location()))
			return a.emit(res, func(w io.Writer) {
				fmt.Fprintf(w, "Synced %d day(s), %d failed\n", res.Sent, res.Failed)
			})
		},
	}
}

// syncDates pushes fresh totals for the local dates of the given times.
// Dates left without activities are reset to zero.
func (a *App) syncDates(ctx context.Context, phone string, times ...time.Time) {
	loc := a.cfg.Location()
	wanted := make(map[string]bool)
	for _, t := range times {
		wanted[t.In(loc).Format(entity.RecordDateLayout)] = true
	}
	exercises, err := a.backend.ListExercises(ctx, phone)
	if err != nil {
		slog.Warn("listing activities for sync failed", slog.String("error", err.Error()))
		return
	}
	totals := make([]aggregate.DayTotal, 0, len(wanted))
	for _, t := range aggregate.DailyTotals(exercises, loc) {
		if wanted[t.Date] {
			totals = append(totals, t)
			delete(wanted, t.Date)
		}
	}
	for date := range wanted {
		totals = append(totals, aggregate.DayTotal{Date: date})
	}
	res := aggregate.SyncDailyTotals(ctx, a.backend, phone, totals)
	if res.Failed > 0 {
		slog.Warn("daily records were not updated", slog.Int("failed", res.Failed), slog.Int("sent", res.Sent))
	}
}

func renderSections(w io.Writer, sections []aggregate.Section, a *App) {
	if len(sections) == 0 {
		fmt.Fprintln(w, "  no activities")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range sections {
		fmt.Fprintf(tw, "%s\n", s.Date)
		for _, ex := range s.Activities {
			fmt.Fprintf(tw, "  #%d\t%s\t%s\t%d min\t%d kcal\t%.1f km\trating %d\n",
				ex.ID,
				ex.ExerciseDate.In(a.cfg.Location()).Format("15:04"),
				ex.ExerciseType,
				ex.DurationMinutes,
				ex.CaloriesBurned,
				ex.DistanceFromHome,
				ex.Rating,
			)
		}
	}
	tw.Flush()
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("id must be a positive number")
	}
	return id, nil
}
