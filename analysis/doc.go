// Package analysis provides statistics and reductions for data cubes.
//
// Reductions treat masked elements and NaN values as missing data:
// [RMS] and [Summary] skip them, [Integrate] and [Smooth] count them as
// zero. Every function returns a new cube and leaves its input unchanged.
//
// Synthetic sources are built from an index mesh in features format,
// one row per axis in (x, y, z) order and one column per element:
//
//	feat, _ := analysis.IndexFeatures(shape, nil, nil)
//	vals, _ := analysis.Gaussian(mu, precision, feat, 1)
package analysis
