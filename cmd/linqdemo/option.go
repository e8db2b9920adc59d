package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/linqtools/pkg/fp/option"
)

var optionCmd = &cobra.Command{
	Use:   "option [text]",
	Short: "Chain options over a string",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLogger(func(logger *zap.Logger) error {
			text := getInput()
			if len(args) > 0 {
				text = args[0]
			}
			logger.Debug("option demo", zap.String("input", text))

			out := cmd.OutOrStdout()
			for _, line := range optionDemo(text) {
				fmt.Fprintln(out, line)
			}
			return nil
		})
	},
}

const nothing = "nothing"

func substring5(s string) string {
	if len(s) < 5 {
		return ""
	}
	return s[5:]
}

func substring5Checked(s string) option.Option[string] {
	if len(s) > 50 {
		return option.Some(s[5:])
	}
	return option.None[string]()
}

func maybeInt(string) option.Option[int] {
	return option.Some(24)
}

func optionDemo(text string) []string {
	input := option.WhiteSpaceToNone(text)

	res := option.Map(input, substring5).GetOrDefault(nothing)

	res2 := option.Map(
		option.Bind(input, substring5Checked).Where(func(m string) bool { return len(m) == 9 }),
		strings.ToUpper).GetOrDefault(nothing)

	res3 := option.Bind(option.Bind(input, substring5Checked), maybeInt).GetOrDefault(99)

	res4 := option.Map(
		input.Where(func(n string) bool { return len(n) > 10 }),
		substring5).GetOrDefault(nothing)

	res5 := option.Choose(text,
		option.When(func(s string) bool { return strings.HasPrefix(s, "Uwe") }, strings.ToLower),
		option.Default[string](strings.ToUpper)).GetOrDefault(nothing)

	return []string{
		fmt.Sprintf("map: %s", res),
		fmt.Sprintf("bind+where: %s", res2),
		fmt.Sprintf("bind+bind: %d", res3),
		fmt.Sprintf("where+map: %s", res4),
		fmt.Sprintf("choose: %s", res5),
	}
}
