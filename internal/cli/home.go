package cli

import (
	"fmt"
	"io"

	"github.com/limbo/fittrack/internal/aggregate"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const homeRecentActivities = 3

type homeView struct {
	User       *entity.User        `yaml:"user"`
	Today      *entity.DailyRecord `yaml:"today"`
	Goals      []*entity.Goal      `yaml:"goals"`
	Activities []*entity.Exercise  `yaml:"recentActivities"`
}

func (a *App) homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Dashboard: profile, today's record, goals and recent activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			a.ensureToday(cmd.Context(), phone)

			view := homeView{}
			var records []*entity.DailyRecord
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				user, err := a.backend.GetUser(ctx, phone)
				view.User = user
				return err
			})
			g.Go(func() error {
				recs, err := a.backend.ListDailyRecords(ctx, phone)
				records = recs
				return err
			})
			g.Go(func() error {
				goals, err := a.backend.ListGoals(ctx, phone)
				view.Goals = goals
				return err
			})
			g.Go(func() error {
				acts, err := a.backend.LastExercises(ctx, phone, homeRecentActivities)
				view.Activities = acts
				return err
			})
			if err = g.Wait(); err != nil {
				return err
			}
			today := a.now().In(a.cfg.Location()).Format(entity.RecordDateLayout)
			for _, r := range records {
				if r.RecordDate == today {
					view.Today = r
				}
			}
			return a.emit(view, func(w io.Writer) { renderHome(w, &view, a) })
		},
	}
}

func renderHome(w io.Writer, v *homeView, a *App) {
	renderProfile(w, v.User)
	fmt.Fprintln(w)
	if v.Today != nil {
		fmt.Fprintf(w, "Today (%s)\n", v.Today.RecordDate)
		fmt.Fprintf(w, "  Steps:     %d\n", v.Today.TotalSteps)
		fmt.Fprintf(w, "  Calories:  %s\n", optInt(v.Today.TotalCaloriesBurned))
		fmt.Fprintf(w, "  Exercise:  %s min\n", optInt(v.Today.ExerciseDurationMinutes))
	} else {
		fmt.Fprintln(w, "No record for today yet")
	}
	fmt.Fprintln(w)
	renderGoals(w, v.Goals)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent activities")
	renderSections(w, aggregate.GroupByLocalDate(v.Activities, a.cfg.Location()), a)
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
