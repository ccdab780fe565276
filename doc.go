// Package weblib is a collection of small utility packages for front-end
// style helpers written in Go.
//
// This module contains the following packages:
//
// CORE:
//
//   - deepcopy: Structural deep copy over slices, arrays, maps and structs with
//     reflect based type dispatch, JSON and MessagePack interchange copies,
//     and own-key checks (HasKeys)
//   - limiter: Debounce and throttle wrappers over an injectable clock, a keyed
//     ThrottleGroup with idle cleanup, Prometheus metrics and env/JSON config
//
// SUPPORT:
//
//   - clock: Real and fake clocks with deferred callbacks for deterministic tests
//   - env: Environment lookups with _FILE and /run/secrets fallbacks
//
// PEER UTILITIES:
//
//   - format: Phone masking, numeric sanitizing, elapsed and absolute time
//     formatting, second conversions, zero padding and day aware durations
//   - color: HSL to RGB conversion
//   - dom: Class list manipulation and script injection on x/net/html documents
//   - urlutil: Query string decoding and legacy style URL parsing
//
// Packages can be used independently. Formatting helpers assume well-formed
// input and return unspecified output for malformed values.
package weblib
