package naming

import (
	"strings"

	"github.com/openstack/networking-infoblox/xnet"
)

// Only subnets from /25 down to /32 are pooled behind a DHCP relay network,
// so only those get a key.
const (
	minPooledPrefix = 25
	maxPooledPrefix = 32
)

var subnetKeyReplacer = strings.NewReplacer(".", "-", "/", "-")

// IPv4SubnetKey returns the key for a small IPv4 subnet: subnetName when it
// is set, otherwise the CIDR with '.' and '/' replaced by '-'. Subnets
// larger than /25, IPv6 subnets and unparseable CIDRs get no key.
func IPv4SubnetKey(cidr, subnetName string) (string, bool) {
	_, ones, ok := xnet.ParseIPv4CIDR(cidr)
	if !ok || ones < minPooledPrefix || ones > maxPooledPrefix {
		return "", false
	}
	if subnetName != "" {
		return subnetName, true
	}
	return subnetKeyReplacer.Replace(cidr), true
}
