// Package seq contains stateless helpers over iter.Seq: DistinctBy,
// Windowed, Intersperse, SideEffectForAll, FilterMap and friends. They are
// lazy; nothing is pulled until the returned sequence is ranged over.
package seq
