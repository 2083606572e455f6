// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

// Package recommend generates lotto number combinations by rejection sampling.
//
// # Algorithm
//
// Each attempt partitions the 45 numbers into frequency tiers from a
// stats.FrequencyTable (Top-K, Mid, Bottom-K; K defaults to 20), then draws
// without replacement:
//
//   - 3 numbers from the Top tier
//   - 1 or 2 numbers from the Bottom tier, chosen uniformly
//   - the remainder from the Mid tier
//
// The sorted candidate is accepted only when every condition in Constraints
// holds: odd count in [2, 4], longest consecutive run at most 2, at least 3
// sections touched, sum in [100, 200], and not already accepted.
//
// # Termination
//
// Sampling stops after N accepted combinations or when the attempt budget
// (default 10,000) runs out. A short result is not an error; Result.Exhausted
// reports it.
//
// # Usage
//
//	sampler, err := recommend.NewSampler(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	res, err := sampler.Recommend(stats.Analyze(history), 5)
//
// # Thread Safety
//
// A Sampler is safe for concurrent use; calls to Recommend are serialised.
package recommend
