// Package statistics provides descriptive statistics over push sequences
// of any numeric type.
//
// Routines that need two passes, such as Variance and LinearRegression2D,
// range over the input sequence twice. Sequences must therefore produce the
// same elements on every invocation, as slices.Values and numeric.Values do.
//
// Variance is the population variance.
package statistics
