// Package trace records generator draws to a byte stream for replay.
//
// A Recorder captures every draw as a fixed-size record (kind byte plus the
// IEEE-754 bits of the value) behind a small self-describing header, with
// optional zstd compression. A Reader replays a recorded stream, which is
// useful for freezing regression fixtures and for replay-style debugging of
// simulations.
//
// Recording observes the generator; it never changes the draw sequence.
package trace
