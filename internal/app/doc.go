// Package app runs the row grouper over each configured input and writes the
// rendered rows to standard output or to per-input files.
//
// Inputs are processed one at a time, in order. Each input either produces
// its complete output or fails; the first failure stops the run.
package app
