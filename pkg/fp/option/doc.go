// Package option provides Option[T], a value that may be absent.
//
// Option is a sealed two-variant sum type: Some carries a value, None carries
// nothing. The payload is only reachable through Get, Match or a combinator.
//
// Highlights:
// - Some/None/FromNullable/FromPtr/FromComma: construct an Option
// - Map/Bind/BindProject: transform and chain, None short-circuits
// - Where/Or/GetOrDefault/GetOrElse: filter and fall back
// - ThrowOnNone: the unsafe exit, panics with fp.ErrNotFound
// - Choose/FirstOrNone/Zip: build options from rules, sequences and pairs
package option
