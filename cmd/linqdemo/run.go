package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/linqtools/pkg/fp/result"
	"github.com/ib-77/linqtools/pkg/proc"
)

var runCmd = &cobra.Command{
	Use:   "run command [args...]",
	Short: "Run a program and print its output or its failure",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogger(func(logger *zap.Logger) error {
			ctx := commandContext(cmd)
			runner := proc.NewRunner(proc.WithLogger(logger))

			res, err := runner.Run(ctx, args[0], args[1:]...).Await(ctx)
			if err != nil {
				return err
			}

			return result.Match(res,
				func(stdout string) error {
					fmt.Fprint(cmd.OutOrStdout(), stdout)
					return nil
				},
				func(e *proc.ProcessError) error {
					return e
				})
		})
	},
}
