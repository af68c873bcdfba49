// Package mwc implements the core uniform source: a two-word Marsaglia
// multiply-with-carry generator.
//
// Each word advances independently with a full-period carry update and the
// words are combined into a single 32-bit output per draw. The floating-point
// output is scaled into the open interval (0,1), never returning an endpoint.
//
// The generator is deterministic: identical seed pairs driven through
// identical call sequences produce bit-identical outputs. A Source must only
// be driven by one goroutine at a time; concurrent callers get their own
// instances instead of sharing one.
package mwc
