package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/spf13/cobra"
)

const maxReconnectInterval = time.Minute

func (a *App) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow daily record updates live",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			err = a.watch(ctx, phone, func(ev *entity.RecordEvent) {
				_ = a.emit(ev, func(w io.Writer) { renderEvent(w, ev) })
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// watch keeps a stream open until ctx ends, reconnecting with exponential
// backoff. Authorization failures end it immediately.
func (a *App) watch(ctx context.Context, phone string, handle func(*entity.RecordEvent)) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = maxReconnectInterval
	bo.MaxElapsedTime = 0

	op := func() error {
		stream, err := a.backend.DialStream(ctx, phone)
		if err != nil {
			switch client.StatusCode(err) {
			case http.StatusUnauthorized, http.StatusForbidden, http.StatusServiceUnavailable:
				return backoff.Permanent(err)
			}
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				stream.Close()
			case <-done:
			}
		}()
		defer stream.Close()
		bo.Reset()
		slog.Info("watching daily records", slog.String("phone", phone))
		for {
			ev, err := stream.Next()
			if err != nil {
				if ctx.Err() != nil {
					return backoff.Permanent(ctx.Err())
				}
				return err
			}
			handle(ev)
		}
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("stream lost, reconnecting", slog.String("error", err.Error()), slog.Duration("in", wait))
	}
	return backoff.RetryNotify(op, backoff.WithContext(bo, ctx), notify)
}

func renderEvent(w io.Writer, ev *entity.RecordEvent) {
	if ev.Record == nil {
		fmt.Fprintf(w, "%s\n", ev.Kind)
		return
	}
	r := ev.Record
	fmt.Fprintf(w, "%s %s: %d steps, %s kcal, %s min\n", ev.Kind, r.RecordDate, r.TotalSteps, optInt(r.TotalCaloriesBurned), optInt(r.ExerciseDurationMinutes))
}
