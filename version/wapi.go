package version

import (
	"regexp"
	"strconv"

	"github.com/openstack/networking-infoblox/ipam/errors"
)

var majorMinor = regexp.MustCompile(`^(\d+)\.(\d+)`)

// Major returns the major component of a dotted version string such as a
// WAPI version ("2.2", "1.4.1"). An empty string is an invalid argument. A
// string without a numeric minor component, like "2.", is reported as a miss.
func Major(v string) (int, bool, error) {
	if v == "" {
		return 0, false, errors.ErrInvalidArgument("version must not be empty")
	}
	m := majorMinor.FindStringSubmatch(v)
	if m == nil {
		return 0, false, nil
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		// only possible on overflow
		return 0, false, nil
	}
	return major, true, nil
}

// Supports reports whether the version v has a major version of at least
// minMajor. Unparseable versions support nothing.
func Supports(v string, minMajor int) bool {
	major, ok, err := Major(v)
	if err != nil || !ok {
		return false
	}
	return major >= minMajor
}
