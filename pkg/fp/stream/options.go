package stream

import "context"

type OptionKey string

const (
	DrainOptionKey OptionKey = "drain_options"
)

type DrainOptions struct {
	DrainOnCancel bool
}

// WithDrainOnCancel makes stages read their input to the end after
// cancellation, discarding it, so upstream producers that ignore ctx unblock.
func WithDrainOnCancel(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{DrainOnCancel: drain})
}

func IsDrainOnCancelEnabled(ctx context.Context, defaultDrain bool) bool {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.DrainOnCancel
	}
	return defaultDrain
}
