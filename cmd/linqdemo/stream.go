package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/linqtools/pkg/fp/async"
	"github.com/ib-77/linqtools/pkg/fp/stream"
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Walk an async sequence of numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogger(func(logger *zap.Logger) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()
			for line := range streamDemo(ctx, getCount(), getDelay()) {
				fmt.Fprintln(out, line)
			}
			logger.Debug("stream demo done")
			return nil
		})
	},
}

func delayedInts(ctx context.Context, count int, delay time.Duration) <-chan int {
	values := make([]int, count)
	for i := range values {
		values[i] = i + 1
	}
	return stream.MapAwait(ctx, stream.FromValues(ctx, values...), func(ctx context.Context, n int) *async.Task[int] {
		return sleepThen(ctx, delay, n)
	})
}

func sleepThen[T any](ctx context.Context, delay time.Duration, v T) *async.Task[T] {
	return async.Go(ctx, func(ctx context.Context) T {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
		}
		return v
	})
}

func streamDemo(ctx context.Context, count int, delay time.Duration) <-chan string {
	numbers := stream.Map(ctx, delayedInts(ctx, count, delay), func(n int) string {
		return fmt.Sprintf("Number: %d", n)
	})

	pairs := stream.Bind(ctx, delayedInts(ctx, count, delay), func(ctx context.Context, n int) <-chan string {
		return stream.FromValues(ctx, fmt.Sprintf("Number: %d-1", n), fmt.Sprintf("Number: %d-2", n))
	})

	awaited := stream.MapAwait(ctx, delayedInts(ctx, count, delay), func(ctx context.Context, n int) *async.Task[string] {
		return sleepThen(ctx, delay, fmt.Sprintf("Async number: %d", n))
	})

	out := make(chan string)
	go func() {
		defer close(out)
		for _, ch := range []<-chan string{numbers, pairs, awaited} {
			for line := range ch {
				out <- line
			}
		}
	}()
	return out
}
