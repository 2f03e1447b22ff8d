// Package uncert provides scalar types whose arithmetic propagates
// measurement uncertainty, and the generic [Number] constraint that
// lets numerical code run unchanged over plain and uncertainty-carrying
// quantities.
//
// [Value] pairs a central value with a standard error and propagates it
// to first order through every operation, assuming uncorrelated
// operands. [Real] is a plain float64 with the same method set and zero
// overhead.
package uncert
