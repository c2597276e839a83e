// Package query searches and merges the ordered record lists the mapping
// layer works with: decoded grid objects, persisted rows and mapping
// conditions.
//
// Every function validates its arguments: a nil argument where a list or
// map is required is an invalid argument error, because it is always a
// defect of the caller. Searching an empty record list yields a nil result,
// while searching a non-empty list that has no match yields an empty,
// non-nil result.
package query
