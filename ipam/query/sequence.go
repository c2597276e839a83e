package query

import "github.com/openstack/networking-infoblox/ipam/errors"

// ContainsSequence reports whether sub appears in full as a contiguous run,
// in order. An empty sub is never contained.
func ContainsSequence[T any](sub, full []T) (bool, error) {
	if sub == nil || full == nil {
		return false, errors.ErrInvalidArgument("sequences must not be nil")
	}
	if len(sub) == 0 || len(sub) > len(full) {
		return false, nil
	}
	for i := 0; i+len(sub) <= len(full); i++ {
		match := true
		for j := range sub {
			if !equal(full[i+j], sub[j]) {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// ContainsAny reports whether at least one of candidates is present in full.
func ContainsAny[T any](candidates, full []T) (bool, error) {
	if candidates == nil || full == nil {
		return false, errors.ErrInvalidArgument("sequences must not be nil")
	}
	for _, c := range candidates {
		if index(full, c) >= 0 {
			return true, nil
		}
	}
	return false, nil
}

// Merge returns the union of lists, keeping the first occurrence of every
// element in the order it was seen. At least one list is required and none
// may be nil.
func Merge[T any](lists ...[]T) ([]T, error) {
	if len(lists) == 0 {
		return nil, errors.ErrInvalidArgument("at least one list is required")
	}
	merged := []T{}
	for i, l := range lists {
		if l == nil {
			return nil, errors.ErrInvalidArgument("list %d is nil", i)
		}
		for _, e := range l {
			if index(merged, e) < 0 {
				merged = append(merged, e)
			}
		}
	}
	return merged, nil
}

func index[T any](list []T, e T) int {
	for i, v := range list {
		if equal(v, e) {
			return i
		}
	}
	return -1
}
