// Package rsramp implements ramp secret sharing on top of a systematic
// Reed-Solomon erasure code.
//
// For parameters (T, R, N) the encoder is built with T data shards and N
// parity shards. The data shards are the R pieces of the secret followed by
// T-R rows of fresh randomness; only the N parity shards are handed out as
// shares. Because the code is MDS (a Cauchy generator is used), any T parity
// shards recover every data shard, while any T-R parity shards are
// statistically independent of the secret pieces.
//
// Shares are byte arrays of length ceil(size/R), and T+N may not exceed 256,
// the number of evaluation points GF(2^8) offers.
package rsramp
