// Package badge generates deterministic host-identity icons.
//
// A badge is a small 32x32 pixel image that lets a human tell machines and
// operating contexts apart at a glance, without reading text. The pipeline
// turns (context, machine color, host identifier) into a fixed-size RGBA
// pixel buffer and nothing else: no file or network I/O happens here, and
// the same inputs always produce the same bytes on every platform.
//
// # Pipeline
//
// Generation runs strictly one way through three stages:
//
//  1. Color resolution: the operating context selects a fixed profile color,
//     and the machine color is either parsed from an explicit hex string or
//     derived from the host identifier. A contrast pair (high/mid) is chosen
//     from the machine color's luminance so markings stay visible on any
//     base color.
//  2. Hash walk: a SHA-256 digest of the host identifier drives a clamped
//     diagonal walk over an 8x8 grid, producing per-cell visit counts and a
//     final endpoint position.
//  3. Rendering: a 16x16 canvas is painted from the visit grid and palette,
//     then upscaled to 32x32 with nearest-neighbor sampling for crisp,
//     blocky pixel-art edges.
//
// # Determinism
//
// Determinism is the core correctness property. The walk consumes the
// digest two bits at a time (least-significant pairs first within each
// byte) and chains hash-of-hash when the byte stream runs out, so the step
// sequence is a pure function of the identifier. Boundary steps clamp
// rather than wrap, which biases edge cells toward extra visits; that
// asymmetry is part of the format and must not be "fixed", since changing
// it changes every generated icon.
//
// # Error Handling
//
// Only one input can fail: an explicit machine color string that is not
// exactly six hex digits (after an optional leading '#') yields
// ErrInvalidColorFormat. Empty or whitespace-only host identifiers are
// normalized to a fixed sentinel rather than rejected.
//
// # Concurrency
//
// All functions are pure and stateless; each call owns its own grid and
// palette. The package is safe for concurrent use without locking.
package badge
