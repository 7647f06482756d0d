package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/limbo/fittrack/pkg/entity"
	"github.com/spf13/cobra"
)

const progressBarWidth = 20

func (a *App) goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage goals",
	}
	cmd.AddCommand(a.goalsListCmd(), a.goalsAddCmd(), a.goalsEditCmd(), a.goalsRemoveCmd())
	return cmd
}

type goalView struct {
	entity.Goal `yaml:",inline"`
	Progress    *float64 `yaml:"progress,omitempty"`
}

func (a *App) goalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			goals, err := a.backend.ListGoals(ctx, phone)
			if err != nil {
				return err
			}
			records, err := a.backend.ListDailyRecords(ctx, phone)
			if err != nil {
				return err
			}
			today := a.now().In(a.cfg.Location()).Format(entity.RecordDateLayout)
			var current *entity.DailyRecord
			for _, r := range records {
				if r.RecordDate == today {
					current = r
				}
			}
			views := make([]goalView, 0, len(goals))
			for _, g := range goals {
				views = append(views, goalView{Goal: *g, Progress: goalProgress(g, current)})
			}
			return a.emit(views, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, v := range views {
					fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\n", v.ID, v.GoalType, v.Goal.Goal, progressBar(v.Progress))
				}
				tw.Flush()
			})
		},
	}
}

// goalProgress is the share of a numeric steps or calories goal reached today, capped at 1.
func goalProgress(g *entity.Goal, today *entity.DailyRecord) *float64 {
	if today == nil {
		return nil
	}
	target, err := strconv.ParseFloat(strings.TrimSpace(g.Goal), 64)
	if err != nil || target <= 0 {
		return nil
	}
	var reached float64
	switch g.GoalType {
	case entity.GoalTypeSteps:
		reached = float64(today.TotalSteps)
	case entity.GoalTypeCalories:
		if today.TotalCaloriesBurned == nil {
			return nil
		}
		reached = float64(*today.TotalCaloriesBurned)
	default:
		return nil
	}
	p := min(reached/target, 1)
	return &p
}

func progressBar(p *float64) string {
	if p == nil {
		return ""
	}
	filled := int(*p * progressBarWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressBarWidth-filled) + "] " + strconv.Itoa(int(*p*100)) + "%"
}

func renderGoals(w io.Writer, goals []*entity.Goal) {
	if len(goals) == 0 {
		fmt.Fprintln(w, "No goals set")
		return
	}
	fmt.Fprintln(w, "Goals")
	for _, g := range goals {
		fmt.Fprintf(w, "  %s: %s\n", g.GoalType, g.Goal)
	}
}

func (a *App) goalsAddCmd() *cobra.Command {
	var goalType, goal string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			if goalType, err = a.prompt("Goal type (Weight, Steps, Calories, Custom)", goalType); err != nil {
				return err
			}
			if goal, err = a.prompt("Goal", goal); err != nil {
				return err
			}
			g, err := a.backend.CreateGoal(ctx, phone, goalType, goal)
			if err != nil {
				return err
			}
			return a.emit(g, func(w io.Writer) { fmt.Fprintf(w, "Added goal #%d\n", g.ID) })
		},
	}
	cmd.Flags().StringVar(&goalType, "type", "", "Weight, Steps, Calories or Custom")
	cmd.Flags().StringVar(&goal, "goal", "", "target value or free text")
	return cmd
}

func (a *App) goalsEditCmd() *cobra.Command {
	var goalType, goal string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a goal",
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
			if goalType == "" || goal == "" {
				goals, err := a.backend.ListGoals(ctx, phone)
				if err != nil {
					return err
				}
				for _, g := range goals {
					if g.ID == id {
						goalType = orDefault(goalType, g.GoalType)
						goal = orDefault(goal, g.Goal)
					}
				}
			}
			g, err := a.backend.UpdateGoal(ctx, phone, id, goalType, goal)
			if err != nil {
				return err
			}
			return a.emit(g, func(w io.Writer) { fmt.Fprintf(w, "Updated goal #%d\n", g.ID) })
		},
	}
	cmd.Flags().StringVar(&goalType, "type", "", "Weight, Steps, Calories or Custom")
	cmd.Flags().StringVar(&goal, "goal", "", "target value or free text")
	return cmd
}

// orDefault returns v unless it is empty
func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (a *App) goalsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err = a.backend.DeleteGoal(cmd.Context(), phone, id); err != nil {
				return err
			}
			a.printf("Removed goal #%d\n", id)
			return nil
		},
	}
}
