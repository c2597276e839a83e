// Package xnet holds address helpers shared by the naming and mapping code.
package xnet

import (
	"fmt"
	"net"
)

// IPVersion returns 4 or 6 for a textual IP address and an error if ip does
// not parse.
func IPVersion(ip string) (int, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return 0, fmt.Errorf("%q is not a valid IP address", ip)
	}
	if parsed.To4() != nil {
		return 4, nil
	}
	return 6, nil
}

// IsValidIP reports whether ip is a textual IPv4 or IPv6 address.
func IsValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// ParseIPv4CIDR parses cidr and returns the address and prefix length if it
// is an IPv4 network in CIDR notation. The host bits of the address are kept.
func ParseIPv4CIDR(cidr string) (net.IP, int, bool) {
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, 0, false
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return nil, 0, false
	}
	ones, bits := ipnet.Mask.Size()
	if bits != 32 {
		return nil, 0, false
	}
	return ip4, ones, true
}
