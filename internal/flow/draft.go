package flow

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/pkg/entity"
)

// Choice that lets the user type an exercise name of their own
const CustomExercise = "Custom"

var CommonExercises = []string{
	"Longer Distance Walking",
	"Paced Walking",
	"Climbing Stairs",
	"Jumping Jacks",
	"Running",
	"Burpees",
	"Cycling",
	"Swimming",
	"Elliptical",
	"Rowing",
	"Yoga",
	"Pilates",
	"Strength Training",
	"HIIT",
	"Dancing",
	"Hiking",
	"Other",
}

// ActivityDraft is the state of the add/edit activity form, shared across
// exercise selection, the timer and the rating step.
type ActivityDraft struct {
	ExerciseType     string
	DurationMinutes  string
	CaloriesBurned   string
	Intensity        string
	Rating           string
	DistanceFromHome string
	ExerciseDate     *time.Time
}

func NewActivityDraft() *ActivityDraft {
	return &ActivityDraft{Intensity: "1", Rating: "1"}
}

// DraftFromExercise prefills the form for editing.
func DraftFromExercise(ex *entity.Exercise) *ActivityDraft {
	date := ex.ExerciseDate
	return &ActivityDraft{
		ExerciseType:     ex.ExerciseType,
		DurationMinutes:  strconv.Itoa(ex.DurationMinutes),
		CaloriesBurned:   strconv.Itoa(ex.CaloriesBurned),
		Intensity:        strconv.Itoa(ex.Intensity),
		Rating:           strconv.Itoa(ex.Rating),
		DistanceFromHome: strconv.FormatFloat(ex.DistanceFromHome, 'f', -1, 64),
		ExerciseDate:     &date,
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (d *ActivityDraft) IsValidForCalculation() bool {
	if blank(d.ExerciseType) {
		return false
	}
	duration, err := strconv.Atoi(strings.TrimSpace(d.DurationMinutes))
	return err == nil && duration > 0
}

func (d *ActivityDraft) IsFormValid() bool {
	return !blank(d.ExerciseType) && !blank(d.DurationMinutes) && !blank(d.CaloriesBurned) && !blank(d.DistanceFromHome)
}

// CanSubmit reports whether the submit action is enabled
func (d *ActivityDraft) CanSubmit() bool {
	return d.IsFormValid()
}

// ApplyRecommendation selects an exercise. Picking CustomExercise uses custom instead.
func (d *ActivityDraft) ApplyRecommendation(choice, custom string) {
	if choice == CustomExercise {
		d.ExerciseType = strings.TrimSpace(custom)
		return
	}
	d.ExerciseType = choice
}

func (d *ActivityDraft) SetDuration(minutes int) {
	d.DurationMinutes = strconv.Itoa(minutes)
}

// Calculate asks the calorie service for the current form values and stores the rounded result.
func (d *ActivityDraft) Calculate(ctx context.Context, calc CalorieCalculator) (int, error) {
	if !d.IsValidForCalculation() {
		return 0, ErrNotCalculable
	}
	duration, _ := strconv.Atoi(strings.TrimSpace(d.DurationMinutes))
	intensity, err := strconv.Atoi(strings.TrimSpace(d.Intensity))
	if err != nil {
		intensity = 1
	}
	calories, err := calc.CalculateCalories(ctx, d.ExerciseType, duration, intensity)
	if err != nil {
		return 0, err
	}
	rounded := int(math.Round(calories))
	d.CaloriesBurned = strconv.Itoa(rounded)
	return rounded, nil
}

// ToExercise converts the form into a backend request.
func (d *ActivityDraft) ToExercise(phone string) (*client.ExerciseInput, error) {
	if !d.CanSubmit() {
		return nil, ErrIncompleteForm
	}
	duration, err := strconv.Atoi(strings.TrimSpace(d.DurationMinutes))
	if err != nil {
		return nil, ErrIncompleteForm
	}
	calories, err := strconv.ParseFloat(strings.TrimSpace(d.CaloriesBurned), 64)
	if err != nil {
		return nil, ErrIncompleteForm
	}
	distance, err := strconv.ParseFloat(strings.TrimSpace(d.DistanceFromHome), 64)
	if err != nil {
		return nil, ErrIncompleteForm
	}
	intensity, err := strconv.Atoi(strings.TrimSpace(d.Intensity))
	if err != nil {
		return nil, ErrIncompleteForm
	}
	rating, err := strconv.Atoi(strings.TrimSpace(d.Rating))
	if err != nil {
		return nil, ErrIncompleteForm
	}
	return &client.ExerciseInput{
		PhoneNumber:      phone,
		ExerciseType:     strings.TrimSpace(d.ExerciseType),
		DurationMinutes:  duration,
		CaloriesBurned:   int(math.Round(calories)),
		Intensity:        intensity,
		Rating:           rating,
		DistanceFromHome: distance,
		ExerciseDate:     d.ExerciseDate,
	}, nil
}

func IntensityLabel(intensity int) string {
	switch {
	case intensity <= 3:
		return "Low intensity, can hold an entire conversation"
	case intensity <= 7:
		return "Moderate intensity, can still talk a little"
	default:
		return "High intensity, out of breath"
	}
}

// RandomDistance stands in for a GPS distance: 0.1 to 3.0 km, one decimal.
func RandomDistance(rng *rand.Rand) float64 {
	tenths := rng.Intn(30) + 1
	return float64(tenths) / 10
}
