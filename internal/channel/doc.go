// Package channel owns byte- and text-oriented I/O channel primitives.
//
// Ownership boundary:
// - BytesReader/BytesWriter channel contracts
// - buffered stream implementations over a raw transport
// - memory-backed implementations for tests and replay
// - text adapters with a fixed encoding
//
// A channel is exclusively owned by the task that created it; none of the
// implementations lock internally.
package channel
