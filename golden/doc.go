// Package golden produces reference vectors for verifying disparity hardware
// and alternative matcher implementations.
//
// Two kinds of fixtures are provided:
//
//   - Generator builds windowSize×Width patch pairs, either with a planted
//     horizontal displacement or with independent noise, each labelled with
//     the exact best disparity and cost from stereo.SearchExhaustive.
//   - SamplePatches crops random square regions from a full frame pair and
//     labels each with its stereo.MatchIntegral disparity map.
//
// All randomness flows through a seeded *rand.Rand (see WithSeed, WithRand),
// so a seed fully determines the output. Generators are not safe for
// concurrent use.
package golden
