// Package spectrum provides the fixed-size forward transform used by the
// visualizer together with a few spectrum-domain helpers.
//
// An [Analyzer] owns one algo-fft plan that is built once and reused for every
// window. Output bins are in natural ascending-frequency order and are not
// scaled by 1/N.
package spectrum
