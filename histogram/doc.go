// Package histogram builds dense N-dimensional frequency tables over pixel
// vectors and answers density queries, the regional model of graph-cut
// segmentation.
//
// Every channel is split into Bins equal-width buckets spanning [Min, Max].
// A vector maps to one flat bin index (channel 0 varies fastest). Values
// outside [Min, Max] are clamped to the nearest edge bucket and NaN falls
// into bucket 0, so every query returns a defined, possibly zero, frequency.
//
// An empty histogram has TotalFrequency 0 and Likelihood 0 everywhere;
// callers decide how to replace zero likelihoods before taking logarithms.
package histogram
