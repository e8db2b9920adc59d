package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/linqtools/pkg/fp/async"
	"github.com/ib-77/linqtools/pkg/fp/option"
)

var asyncCmd = &cobra.Command{
	Use:   "async [text]",
	Short: "Compose async options",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogger(func(logger *zap.Logger) error {
			text := getInput()
			if len(args) > 0 {
				text = args[0]
			}

			lines, err := asyncDemo(commandContext(cmd), text, getDelay())
			if err != nil {
				return err
			}
			logger.Debug("async demo done", zap.Int("lines", len(lines)))

			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		})
	},
}

func substring5Async(ctx context.Context, delay time.Duration, s string) *async.Task[string] {
	return async.Go(ctx, func(ctx context.Context) string {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
		}
		return substring5(s)
	})
}

func asyncDemo(ctx context.Context, text string, delay time.Duration) ([]string, error) {
	input := option.WhiteSpaceToNone(text)

	ares, err := async.MapOption(async.ToAsyncOption(input), substring5).ToOption(ctx)
	if err != nil {
		return nil, err
	}

	ares2, err := async.MapOptionAsync(async.ToAsyncOption(input), func(s string) *async.Task[string] {
		return substring5Async(ctx, delay, s)
	}).ToOption(ctx)
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("map: %s", ares.GetOrDefault(nothing)),
		fmt.Sprintf("map async: %s", ares2.GetOrDefault(nothing)),
	}, nil
}
