// Package streams provides lazy, push-based pipelines over in-memory sequences.
//
// Pipelines are constructed by creating an initial ProducerFunc, which can produce
// elements from slices, numeric ranges, repeated values, or any arbitrary source.
//
// Elements may then be operated upon using mapping, filtering, flattening, and
// sorting operations (which are intermediate ProducerFuncs). Intermediate
// operations take their upstream producer as the first argument and return a new
// producer, so chains are built by nesting calls, and the element type of every
// position in a chain is checked by the compiler.
//
// Finally, the elements are consumed by terminal operations, such as collecting
// them into slices, sets, or maps, folding them into aggregates, checking for
// matching elements, or simply iterating over them.
//
// A producer pushes each element into a SinkFunc, which returns true to request
// more elements and false to stop the producer. The false return propagates up
// through every operation in the chain, short-circuiting the whole pipeline.
// There are no goroutines and no channels: attaching a terminal operation runs
// the entire chain as one nested call stack, one element at a time.
//
// Pipelines are always lazy, meaning that no element is produced until a
// terminal operation is attached, and producers are restartable: running the
// same producer twice re-runs the whole upstream chain each time.
package streams
