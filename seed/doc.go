// Package seed owns the two-word seed state that drives the core generator
// and the rules for deriving it from caller-supplied material.
//
// Seed material arrives in one of four shapes, each modeled as its own Spec
// variant:
//
//   - FromClock: derive both words from the current wall-clock time
//   - FromInt: replace only the second word, keeping the first
//   - FromInts: replace both words
//   - FromTime: derive both words from a fixed timestamp
//
// All derivations are deterministic: the same input always yields the same
// pair. Validation happens at derivation time, never at first draw.
package seed
