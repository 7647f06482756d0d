package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/internal/realtime"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "81228470"

func TestBackendGetUser(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if r.URL.Path == "/api/users/"+phone {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"phoneNumber":"81228470","firstName":"Tan","height":172,"weight":68.5}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":404,"message":"user not found"}`))
	}))
	defer srv.Close()

	b := client.NewBackend(srv.URL+"/", time.Second)
	b.SetToken("tok")
	user, err := b.GetUser(context.Background(), phone)
	require.NoError(t, err)
	assert.Equal(t, "Tan", user.FirstName)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/api/users/"+phone, gotPath)

	_, err = b.GetUser(context.Background(), "90000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))
	assert.Contains(t, err.Error(), "user not found")
}

func TestBackendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"message":"invalid passcode"}`))
	}))
	defer srv.Close()

	b := client.NewBackend(srv.URL, time.Second)
	_, err := b.VerifyOTP(context.Background(), phone, "0000")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.False(t, errors.Is(err, client.ErrNotFound))
}

func TestBackendCreateExerciseBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user-exercises", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, sonic.Unmarshal(raw, &got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":12,"exerciseType":"Running"}`))
	}))
	defer srv.Close()

	b := client.NewBackend(srv.URL, time.Second)
	ex, err := b.CreateExercise(context.Background(), &client.ExerciseInput{
		PhoneNumber:      phone,
		ExerciseType:     "Running",
		DurationMinutes:  30,
		CaloriesBurned:   250,
		Intensity:        5,
		Rating:           4,
		DistanceFromHome: 1.2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), ex.ID)
	assert.Equal(t, "Running", got["exerciseType"])
	assert.EqualValues(t, 30, got["durationMinutes"])
	_, hasDate := got["exerciseDate"]
	assert.False(t, hasDate)
}

func TestBackendDailyRecordCalls(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"record":{"recordDate":"2024-05-01","totalSteps":0},"created":true}`))
		default:
			w.Write([]byte(`{"recordDate":"2024-05-01","totalSteps":10}`))
		}
	}))
	defer srv.Close()

	b := client.NewBackend(srv.URL, time.Second)
	rec, created, err := b.EnsureDay(context.Background(), phone, "2024-05-01")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "2024-05-01", rec.RecordDate)

	steps := 10
	rec, err = b.PutDailyRecord(context.Background(), phone, "2024-05-01", &client.DailyRecordInput{TotalSteps: &steps})
	require.NoError(t, err)
	assert.Equal(t, 10, rec.TotalSteps)
	assert.Equal(t, []string{
		"POST /api/dailyrecords/" + phone + "/today",
		"PUT /api/dailyrecords/" + phone + "/2024-05-01",
	}, paths)
}

func TestAIClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recommendation":
			w.Write([]byte(`{"exercise_recommendation":{"recommendation_1":"Yoga","recommendation_2":"Running","recommendation_3":""}}`))
		case "/calculateCalories":
			var body map[string]any
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, sonic.Unmarshal(raw, &body))
			assert.Equal(t, "Cycling", body["exercise"])
			w.Write([]byte(`{"caloriesBurned":212.6}`))
		case "/activityOpinion":
			w.Write([]byte(`{"opinion":"Nice pace"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ai := client.NewAI(srv.URL, time.Second)
	recs, err := ai.Recommend(context.Background(), &client.RecommendationRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Yoga", "Running"}, recs.List())

	kcal, err := ai.CalculateCalories(context.Background(), "Cycling", 30, 5)
	require.NoError(t, err)
	assert.InDelta(t, 212.6, kcal, 0.001)

	opinion, err := ai.ActivityOpinion(context.Background(), &client.ActivityOpinionRequest{ExerciseType: "Cycling"})
	require.NoError(t, err)
	assert.Equal(t, "Nice pace", opinion)
}

func TestGeocoder(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		q := r.URL.Query()
		assert.Equal(t, "key", q.Get("key"))
		assert.Equal(t, "sg", q.Get("countrycode"))
		assert.Equal(t, "1", q.Get("limit"))
		if q.Get("q") == "000000" {
			w.Write([]byte(`{"results":[]}`))
			return
		}
		w.Write([]byte(`{"results":[{"geometry":{"lat":1.3521,"lng":103.8198}}]}`))
	}))
	defer srv.Close()

	g := client.NewGeocoder(srv.URL, "key", time.Second)
	lat, lon, err := g.Lookup(context.Background(), "238801")
	require.NoError(t, err)
	assert.InDelta(t, 1.3521, lat, 1e-6)
	assert.InDelta(t, 103.8198, lon, 1e-6)

	_, _, err = g.Lookup(context.Background(), "000000")
	assert.ErrorIs(t, err, client.ErrNoGeocodeResult)
	assert.Equal(t, 2, calls)
}

func TestStream(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.CloseAll()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" || r.URL.Path != "/api/ws/"+phone {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		hub.Serve(w, r, phone)
	}))
	defer srv.Close()

	b := client.NewBackend(srv.URL, time.Second)
	_, err := b.DialStream(context.Background(), phone)
	assert.Equal(t, http.StatusForbidden, client.StatusCode(err))

	b.SetToken("tok")
	stream, err := b.DialStream(context.Background(), phone)
	require.NoError(t, err)
	defer stream.Close()
	require.Eventually(t, func() bool { return hub.Subscribers(phone) == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(phone, entity.RecordEvent{Kind: "dailyrecord.updated", Record: &entity.DailyRecord{RecordDate: "2024-05-01", TotalSteps: 42}})
	ev, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "dailyrecord.updated", ev.Kind)
	assert.Equal(t, 42, ev.Record.TotalSteps)
}
