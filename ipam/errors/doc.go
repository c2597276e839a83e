// Package errors holds the error kinds shared by the mapping packages. Every
// error returned across a package boundary in this module is backed by one of
// these concrete types, so callers can tell a caller defect (an invalid
// argument) apart from missing or inconsistent state without string matching.
//
// Malformed data coming from the grid is not an error at all: the codec and
// EA readers report it as a miss. The kinds here are for local defects and
// storage conditions.
package errors
