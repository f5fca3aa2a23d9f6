// Package solver narrows a pool of six-letter candidates from feedback and
// picks guesses that maximize an entropy estimate.
//
// A solve is driven by a Session, which owns everything that changes between
// turns:
//
//   - Pool: the candidates still consistent with every mask observed so far.
//   - Matrix: an optional per-position letter feasibility grid used as a cheap
//     pre-filter before the authoritative consistency check.
//   - Sampler: the random source used by SampledMaskEntropy.
//
// Guess selection switches strategy on pool size. Below Config.SampleThreshold
// every pool word is scored by simulating feedback against a sample of the pool
// (SampledMaskEntropy). At or above it, per-position letter frequencies stand in
// for full simulation (OpeningHeuristic).
//
// Run plays a whole game against a known target and reports the turn count,
// capped at Config.MaxTurns. Sessions are cheap; build one per target when
// solving many targets concurrently. Nothing in this package is shared between
// sessions.
package solver
