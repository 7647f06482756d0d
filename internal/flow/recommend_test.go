package flow_test

import (
	"context"
	"testing"
	"time"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/internal/flow"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testExercise = entity.Exercise{
	ID:               3,
	PhoneNumber:      testPhone,
	ExerciseType:     "Cycling",
	DurationMinutes:  45,
	CaloriesBurned:   320,
	Intensity:        6,
	Rating:           4,
	DistanceFromHome: 2.5,
	ExerciseDate:     time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC),
}

type listerFake struct {
	limit int
}

func (l *listerFake) LastExercises(ctx context.Context, phone string, limit int) ([]*entity.Exercise, error) {
	l.limit = limit
	second := testExercise
	second.ExerciseType = "Yoga"
	second.Rating = 5
	second.DistanceFromHome = 0.3
	return []*entity.Exercise{&testExercise, &second}, nil
}

type recommenderFake struct {
	got *client.RecommendationRequest
}

func (r *recommenderFake) Recommend(ctx context.Context, req *client.RecommendationRequest) (*client.Recommendations, error) {
	r.got = req
	return &client.Recommendations{Recommendation1: "Running", Recommendation2: "Swimming"}, nil
}

func TestBuildRecommendationRequest(t *testing.T) {
	now := time.Date(2024, 5, 1, 7, 30, 0, 0, time.FixedZone("SGT", 8*3600))
	req := flow.BuildRecommendationRequest(now, "", nil)
	assert.Equal(t, "2024-04-30T23:30:00.000Z", req.TimeTriggered)
	assert.Equal(t, "2km", req.UserDistanceFromHome)
	assert.Equal(t, "Phone, Watch", req.ConnectedIotDevices)
	assert.Empty(t, req.Last14ActivityPerformed)
}

func TestRecommend(t *testing.T) {
	lister := &listerFake{}
	ai := &recommenderFake{}
	recs, err := flow.Recommend(context.Background(), lister, ai, testPhone, "1.2", time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"Running", "Swimming"}, recs)
	assert.Equal(t, 14, lister.limit)
	assert.Equal(t, "1.2", ai.got.UserDistanceFromHome)
	assert.Equal(t, "2.5,0.3", ai.got.Last14Distances)
	assert.Equal(t, "Cycling,Yoga", ai.got.Last14ActivityPerformed)
	assert.Equal(t, "4,5", ai.got.Last14ActivityRating)
}
