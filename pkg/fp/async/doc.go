// Package async lifts values, options and results into Task[T], a value
// that becomes available later.
//
// Composition is sequential: Map and Bind wait for their source task and only
// then run the handler, each on its own goroutine, so the caller never blocks.
// A task never runs its computation twice and may be awaited any number of
// times. Cancellation belongs to the context handed to Go and Await; this
// package adds no timeout or retry of its own.
//
// A panic inside a computation is kept as the fault of its task and skips
// every dependent step. Await raises it again in the caller; Settle returns it.
//
// Highlights:
// - Go/FromValue/FromFunc/Do: start or lift a task
// - Map/Bind/BindProject/Then: compose tasks
// - MapResult/BindResult/MatchResult/TryAsync: tasks of result.Result
// - Option: the async option (ToAsyncOption, MapOption, MapOptionAsync, ...)
package async
