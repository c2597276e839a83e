package identity

import (
	"crypto/md5"
	"encoding/hex"
)

// HashLength is the length of the strings returned by Hash.
const HashLength = md5.Size * 2

// Hash returns the hex digest of value. An empty value has no hash.
func Hash(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	sum := md5.Sum([]byte(value))
	return hex.EncodeToString(sum[:]), true
}

// HashValue hashes v if it is a non-empty string and misses for anything
// else, including lists and nil.
func HashValue(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return Hash(s)
}
