// Package stream contains asynchronous sequences: channels fed by one
// goroutine per stage, cancelled through the context.
//
// Stages are strictly sequential. Each element goes through the stage engine
// and is sent on before the next one is read, so order is preserved and at
// most one element per stage is in flight.
//
// Common usage:
// - FromValues/Results/FromTask: build a source channel
// - Map/MapAwait/Where/DistinctBy/SideEffectForAll/Bind: add a stage
// - Collect/First/FirstOrNone: drain a channel
// - Run: add a stage with custom cancellation handlers
package stream
