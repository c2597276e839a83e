package query

import (
	"strings"
	"unicode"

	"github.com/openstack/networking-infoblox/ipam/errors"
)

// SplitList splits s on delimiter and trims the space around every element.
// Grid configuration attributes store lists this way ("A, AAAA, PTR").
func SplitList(s, delimiter string) ([]string, error) {
	if s == "" || delimiter == "" {
		return nil, errors.ErrInvalidArgument("string and delimiter are required")
	}
	parts := strings.Split(s, delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, nil
}

// SplitPairs splits s on outer, then every element on inner, for strings
// like "k1:v1, k2:v2".
func SplitPairs(s, outer, inner string) ([][]string, error) {
	if inner == "" {
		return nil, errors.ErrInvalidArgument("inner delimiter is required")
	}
	items, err := SplitList(s, outer)
	if err != nil {
		return nil, err
	}
	pairs := make([][]string, 0, len(items))
	for _, item := range items {
		fields := strings.Split(item, inner)
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		pairs = append(pairs, fields)
	}
	return pairs, nil
}

// StripSpaces removes every whitespace character from s.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
