package stream

import "sync"

// faults holds the panic that stopped the stage feeding a channel, keyed by
// that channel. It is recorded before the channel closes, so whoever sees the
// close can look it up.
var faults sync.Map

func setFault[T any](ch <-chan T, fault any) {
	faults.Store(ch, fault)
}

// takeFault removes and returns the fault recorded for ch, nil if none.
func takeFault[T any](ch <-chan T) any {
	fault, _ := faults.LoadAndDelete(ch)
	return fault
}

// raise panics in the caller with the fault of a closed channel.
func raise[T any](ch <-chan T) {
	if fault := takeFault(ch); fault != nil {
		panic(fault)
	}
}

// drain reads ch to the end so the stages feeding it can finish.
func drain[T any](ch <-chan T) {
	for range ch {
	}
	takeFault(ch)
}
