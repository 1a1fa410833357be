/*
Package trig implements the numeric core of the tangent calculator.

Every function here is pure: no state, no I/O, fixed-size work per call,
safe for concurrent use. Results are deterministic to the bit for identical
inputs, which is what makes the engine's behavior reproducible across
processes and platforms.

# Pipeline

A calculation flows through four independent stages:

  - ParseInput: text typed by a user to a finite float64 (degrees).
  - ToRadians: degrees to radians using the package Pi constant.
  - NormalizeRadians: range reduction into [-Pi, Pi].
  - Tan: series sine over series cosine, guarded by the Epsilon threshold.

Calculate chains the stages; each is also exported on its own so callers
can validate input or inspect intermediate values without computing a
tangent.

Failures are classified by exactly two sentinels: ErrInvalidInput for
anything the parser rejects, ErrUndefinedTangent when the cosine magnitude
falls below Epsilon. Use errors.Is to branch on them.
*/
package trig
