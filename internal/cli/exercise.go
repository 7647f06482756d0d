package cli

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/internal/flow"
	"github.com/spf13/cobra"
)

func (a *App) exerciseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Guided exercise sessions",
	}
	cmd.AddCommand(a.exerciseStartCmd())
	return cmd
}

// exerciseStartCmd walks through selection, timing and rating in one session.
func (a *App) exerciseStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Pick an exercise, time it, rate it and log it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(a.now().UnixNano()))
			draft := flow.NewActivityDraft()
			draft.DistanceFromHome = strconv.FormatFloat(flow.RandomDistance(rng), 'f', 1, 64)

			if err = a.selectExercise(ctx, phone, draft); err != nil {
				return err
			}
			minutes, err := a.runTimer()
			if err != nil {
				return err
			}
			draft.SetDuration(minutes)
			if err = a.rateSession(draft); err != nil {
				return err
			}
			if _, err = draft.Calculate(ctx, a.ai); err != nil {
				slog.Warn("calorie calculation failed", slog.String("error", err.Error()))
				if draft.CaloriesBurned, err = a.prompt("Calories burned", ""); err != nil {
					return err
				}
			}
			now := a.now()
			draft.ExerciseDate = &now
			if err = a.submitDraft(ctx, phone, draft, 0); err != nil {
				return err
			}
			a.printOpinion(ctx, draft)
			return nil
		},
	}
}

func (a *App) selectExercise(ctx context.Context, phone string, draft *flow.ActivityDraft) error {
	options, err := flow.Recommend(ctx, a.backend, a.ai, phone, draft.DistanceFromHome+"km", a.now())
	if err != nil {
		slog.Warn("fetching recommendations failed", slog.String("error", err.Error()))
		a.printf("Recommendations are unavailable right now.\n")
	}
	if len(options) > 0 {
		a.printf("Recommended for you:\n")
	}
	choices := append(options, flow.CommonExercises...)
	choices = append(choices, flow.CustomExercise)
	for i, c := range choices {
		if i == len(options) && len(options) > 0 {
			a.printf("Other exercises:\n")
		}
		a.printf("  %2d) %s\n", i+1, c)
	}
	for {
		raw, err := a.prompt("Choose an exercise", "")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > len(choices) {
			a.printf("Please enter a number between 1 and %d\n", len(choices))
			continue
		}
		custom := ""
		if choices[n-1] == flow.CustomExercise {
			if custom, err = a.prompt("Exercise name", ""); err != nil {
				return err
			}
		}
		draft.ApplyRecommendation(choices[n-1], custom)
		if strings.TrimSpace(draft.ExerciseType) != "" {
			return nil
		}
	}
}

// runTimer reads single-line commands until the session is stopped.
func (a *App) runTimer() (int, error) {
	sw := flow.NewStopwatch(a.now)
	a.printf("Timer: enter to start/stop, + or - to adjust by a minute, r to reset\n")
	for {
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return 0, errors.New("input closed while timing the exercise")
		}
		switch strings.TrimSpace(line) {
		case "":
			if !sw.Running() {
				sw.Start()
				a.printf("Started\n")
				continue
			}
			minutes := sw.Stop()
			a.printf("Stopped at %s, logging %d min\n", flow.FormatElapsed(sw.Elapsed()), minutes)
			return minutes, nil
		case "+":
			sw.Adjust(time.Minute)
		case "-":
			sw.Adjust(-time.Minute)
		case "r":
			sw.Reset()
		}
		a.printf("%s\n", flow.FormatElapsed(sw.Elapsed()))
	}
}

func (a *App) rateSession(draft *flow.ActivityDraft) error {
	for {
		raw, err := a.prompt("Intensity 1-10", "")
		if err != nil {
			return err
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 10 {
			draft.Intensity = raw
			a.printf("%s\n", flow.IntensityLabel(n))
			break
		}
	}
	for {
		raw, err := a.prompt("Rating 1-5", "")
		if err != nil {
			return err
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 5 {
			draft.Rating = raw
			return nil
		}
	}
}

func (a *App) printOpinion(ctx context.Context, draft *flow.ActivityDraft) {
	in, err := draft.ToExercise("")
	if err != nil {
		return
	}
	opinion, err := a.ai.ActivityOpinion(ctx, &client.ActivityOpinionRequest{
		ExerciseType:     in.ExerciseType,
		DurationMinutes:  in.DurationMinutes,
		CaloriesBurned:   in.CaloriesBurned,
		Intensity:        in.Intensity,
		Rating:           in.Rating,
		DistanceFromHome: in.DistanceFromHome,
	})
	if err != nil {
		slog.Debug("activity opinion unavailable", slog.String("error", err.Error()))
		return
	}
	if opinion != "" {
		a.printf("%s\n", opinion)
	}
}
