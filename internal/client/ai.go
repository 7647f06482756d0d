package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

type RecommendationRequest struct {
	TimeTriggered           string `json:"timeTriggered"`
	UserDistanceFromHome    string `json:"userDistanceFromHome"`
	Last14Distances         string `json:"last14Distances"`
	ConnectedIotDevices     string `json:"connectedIotDevices"`
	Last14UsedIotDevices    string `json:"last14UsedIotDevices"`
	Last14ActivityPerformed string `json:"last14ActivityPerformed"`
	Last14ActivityRating    string `json:"last14ActivityRating"`
}

type Recommendations struct {
	Recommendation1 string `json:"recommendation_1"`
	Recommendation2 string `json:"recommendation_2"`
	Recommendation3 string `json:"recommendation_3"`
}

// List returns the non-empty recommendations in order
func (r *Recommendations) List() []string {
	out := make([]string, 0, 3)
	for _, rec := range []string{r.Recommendation1, r.Recommendation2, r.Recommendation3} {
		if strings.TrimSpace(rec) != "" {
			out = append(out, rec)
		}
	}
	return out
}

type ActivityOpinionRequest struct {
	ExerciseType     string  `json:"exerciseType"`
	DurationMinutes  int     `json:"durationMinutes"`
	CaloriesBurned   int     `json:"caloriesBurned"`
	Intensity        int     `json:"intensity"`
	Rating           int     `json:"rating"`
	DistanceFromHome float64 `json:"distanceFromHome"`
}

// AI talks to the external recommendation and calorie service.
type AI struct {
	baseURL string
	http    *http.Client
}

func NewAI(baseURL string, timeout time.Duration) *AI {
	return &AI{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(timeout),
	}
}

func (a *AI) Recommend(ctx context.Context, req *RecommendationRequest) (*Recommendations, error) {
	var resp struct {
		ExerciseRecommendation *Recommendations `json:"exercise_recommendation"`
	}
	if err := doJSON(ctx, a.http, http.MethodPost, a.baseURL+"/recommendation", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.ExerciseRecommendation == nil {
		return nil, errors.New("recommendation response has no exercise_recommendation")
	}
	return resp.ExerciseRecommendation, nil
}

func (a *AI) CalculateCalories(ctx context.Context, exercise string, duration, intensity int) (float64, error) {
	body := struct {
		Exercise  string `json:"exercise"`
		Duration  int    `json:"duration"`
		Intensity int    `json:"intensity"`
	}{exercise, duration, intensity}
	var resp struct {
		CaloriesBurned *float64 `json:"caloriesBurned"`
	}
	if err := doJSON(ctx, a.http, http.MethodPost, a.baseURL+"/calculateCalories", nil, body, &resp); err != nil {
		return 0, err
	}
	if resp.CaloriesBurned == nil {
		return 0, errors.New("calorie response has no caloriesBurned")
	}
	return *resp.CaloriesBurned, nil
}

func (a *AI) ActivityOpinion(ctx context.Context, req *ActivityOpinionRequest) (string, error) {
	var resp struct {
		Opinion string `json:"opinion"`
	}
	if err := doJSON(ctx, a.http, http.MethodPost, a.baseURL+"/activityOpinion", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Opinion, nil
}
