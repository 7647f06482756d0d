package aggregate

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/limbo/fittrack/pkg/entity"
)

type Mode string

const (
	ModeDaily  Mode = "daily"
	Mode3Day   Mode = "3-day"
	ModeWeekly Mode = "weekly"
)

var (
	ErrUnknownMode      = errors.New("chart mode must be daily, 3-day or weekly")
	ErrUnknownTimeframe = errors.New("timeframe must be 7, 30 or 90 days")
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDaily, Mode3Day, ModeWeekly:
		return Mode(s), nil
	}
	return "", ErrUnknownMode
}

func ValidTimeframe(days int) error {
	switch days {
	case 7, 30, 90:
		return nil
	}
	return ErrUnknownTimeframe
}

func (m Mode) windowSize() int {
	switch m {
	case Mode3Day:
		return 3
	case ModeWeekly:
		return 7
	}
	return 1
}

// Point is one chart sample. Missing values count as zero.
type Point struct {
	RecordDate              string  `json:"recordDate" yaml:"recordDate"`
	TotalSteps              int     `json:"totalSteps" yaml:"totalSteps"`
	TotalCaloriesBurned     int     `json:"totalCaloriesBurned" yaml:"totalCaloriesBurned"`
	ExerciseDurationMinutes int     `json:"exerciseDurationMinutes" yaml:"exerciseDurationMinutes"`
	Weight                  float64 `json:"weight" yaml:"weight"`
}

type Chart struct {
	Mode   Mode     `json:"mode" yaml:"mode"`
	Days   int      `json:"days" yaml:"days"`
	Labels []string `json:"labels" yaml:"labels"`
	Points []Point  `json:"points" yaml:"points"`
}

// FilterTimeframe keeps records whose date, shifted by offset, falls in
// [now - days, now). Result is sorted by date ascending.
func FilterTimeframe(records []*entity.DailyRecord, days int, offset time.Duration, now time.Time) []*entity.DailyRecord {
	from := now.Add(-time.Duration(days) * 24 * time.Hour)
	out := make([]*entity.DailyRecord, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		d, err := time.Parse(entity.RecordDateLayout, r.RecordDate)
		if err != nil {
			continue
		}
		local := d.Add(offset)
		if !local.Before(from) && local.Before(now) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordDate < out[j].RecordDate })
	return out
}

// Bucket passes records through in daily mode and otherwise averages fixed
// windows of 3 or 7 consecutive records. A window is represented by its
// middle record's date and its averages are rounded to integers.
func Bucket(mode Mode, records []*entity.DailyRecord) []Point {
	if mode.windowSize() == 1 {
		points := make([]Point, 0, len(records))
		for _, r := range records {
			points = append(points, toPoint(r))
		}
		return points
	}
	size := mode.windowSize()
	points := make([]Point, 0, len(records)/size+1)
	for i := 0; i < len(records); i += size {
		group := records[i:min(i+size, len(records))]
		var steps, calories, duration, weight float64
		for _, r := range group {
			p := toPoint(r)
			steps += float64(p.TotalSteps)
			calories += float64(p.TotalCaloriesBurned)
			duration += float64(p.ExerciseDurationMinutes)
			weight += p.Weight
		}
		n := float64(len(group))
		points = append(points, Point{
			RecordDate:              group[len(group)/2].RecordDate,
			TotalSteps:              int(math.Round(steps / n)),
			TotalCaloriesBurned:     int(math.Round(calories / n)),
			ExerciseDurationMinutes: int(math.Round(duration / n)),
			Weight:                  math.Round(weight / n),
		})
	}
	return points
}

func toPoint(r *entity.DailyRecord) Point {
	p := Point{RecordDate: r.RecordDate, TotalSteps: r.TotalSteps}
	if r.TotalCaloriesBurned != nil {
		p.TotalCaloriesBurned = *r.TotalCaloriesBurned
	}
	if r.ExerciseDurationMinutes != nil {
		p.ExerciseDurationMinutes = *r.ExerciseDurationMinutes
	}
	if r.Weight != nil {
		p.Weight = *r.Weight
	}
	return p
}

// RoundToSignificant rounds x to one significant figure: 7523 -> 8000, 234 -> 200.
func RoundToSignificant(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	factor := math.Pow(10, math.Floor(math.Log10(math.Abs(x))))
	return math.Round(x/factor) * factor
}

// AxisLabels labels the first and last points as M/D and leaves the rest empty.
func AxisLabels(points []Point) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		if i != 0 && i != len(points)-1 {
			continue
		}
		d, err := time.Parse(entity.RecordDateLayout, p.RecordDate)
		if err != nil {
			labels[i] = p.RecordDate
			continue
		}
		labels[i] = d.Format("1/2")
	}
	return labels
}

func BuildChart(records []*entity.DailyRecord, mode Mode, days int, offset time.Duration, now time.Time) (*Chart, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if err := ValidTimeframe(days); err != nil {
		return nil, err
	}
	points := Bucket(mode, FilterTimeframe(records, days, offset, now))
	return &Chart{
		Mode:   mode,
		Days:   days,
		Labels: AxisLabels(points),
		Points: points,
	}, nil
}
