// Package render draws a group of same-named histograms on one figure:
// an overlay pad and, on request, a ratio pad against the first histogram
// with a chi2/ndf annotation per compared histogram.
package render
