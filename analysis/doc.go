// Package analysis finds the best single buy/sell pair in a price series.
//
// Everything here is a pure function of its input; callers may use it from
// any number of goroutines on independent slices.
package analysis
