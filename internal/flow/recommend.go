package flow

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	recentActivities        = 14
	defaultDistanceFromHome = "2km"
	connectedDevices        = "Phone, Watch"
	usedDevices             = `{ "Phone": "full screen notification", "Watch": "vibrate and notify" }`
)

// BuildRecommendationRequest joins the history fields of recent activities with commas.
func BuildRecommendationRequest(now time.Time, distanceFromHome string, recent []*entity.Exercise) *client.RecommendationRequest {
	distances := make([]string, 0, len(recent))
	types := make([]string, 0, len(recent))
	ratings := make([]string, 0, len(recent))
	for _, ex := range recent {
		distances = append(distances, strconv.FormatFloat(ex.DistanceFromHome, 'f', -1, 64))
		types = append(types, ex.ExerciseType)
		ratings = append(ratings, strconv.Itoa(ex.Rating))
	}
	if strings.TrimSpace(distanceFromHome) == "" {
		distanceFromHome = defaultDistanceFromHome
	}
	return &client.RecommendationRequest{
		TimeTriggered:           now.UTC().Format("2006-01-02T15:04:05.000Z"),
		UserDistanceFromHome:    distanceFromHome,
		Last14Distances:         strings.Join(distances, ","),
		ConnectedIotDevices:     connectedDevices,
		Last14UsedIotDevices:    usedDevices,
		Last14ActivityPerformed: strings.Join(types, ","),
		Last14ActivityRating:    strings.Join(ratings, ","),
	}
}

// Recommend fetches the user's last activities and asks the AI service for
// exercise suggestions.
func Recommend(ctx context.Context, lister ExerciseLister, ai Recommender, phone, distanceFromHome string, now time.Time) ([]string, error) {
	recent, err := lister.LastExercises(ctx, phone, recentActivities)
	if err != nil {
		return nil, err
	}
	recs, err := ai.Recommend(ctx, BuildRecommendationRequest(now, distanceFromHome, recent))
	if err != nil {
		return nil, err
	}
	return recs.List(), nil
}
