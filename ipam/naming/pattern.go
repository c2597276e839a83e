package naming

import (
	"regexp"
	"strings"

	"github.com/openstack/networking-infoblox/ipam/errors"
)

// Placeholders accepted in host and domain name patterns.
const (
	KeyIPAddress    = "ip_address"
	KeyTenantID     = "tenant_id"
	KeyTenantName   = "tenant_name"
	KeyNetworkID    = "network_id"
	KeyNetworkName  = "network_name"
	KeySubnetID     = "subnet_id"
	KeySubnetName   = "subnet_name"
	KeyPortID       = "port_id"
	KeyInstanceID   = "instance_id"
	KeyInstanceName = "instance_name"
)

var (
	placeholder = regexp.MustCompile(`\{([^{}]*)\}`)

	knownKeys = map[string]struct{}{
		KeyIPAddress: {}, KeyTenantID: {}, KeyTenantName: {},
		KeyNetworkID: {}, KeyNetworkName: {}, KeySubnetID: {},
		KeySubnetName: {}, KeyPortID: {}, KeyInstanceID: {},
		KeyInstanceName: {},
	}

	addressReplacer = strings.NewReplacer(".", "-", ":", "-")
)

// Values maps placeholder names to their values.
type Values map[string]string

// ExpandPattern substitutes every {placeholder} in pattern. The ip_address
// value has its '.' and ':' replaced by '-' so that it forms a single DNS
// label. Unknown placeholders and placeholders without a value are invalid
// arguments.
func ExpandPattern(pattern string, values Values) (string, error) {
	if pattern == "" {
		return "", errors.ErrInvalidArgument("pattern must not be empty")
	}
	var err error
	expanded := placeholder.ReplaceAllStringFunc(pattern, func(m string) string {
		if err != nil {
			return m
		}
		key := m[1 : len(m)-1]
		if _, ok := knownKeys[key]; !ok {
			err = errors.ErrInvalidArgument("pattern %q has unknown placeholder %q", pattern, key)
			return m
		}
		v, ok := values[key]
		if !ok || v == "" {
			err = errors.ErrInvalidArgument("pattern %q needs a value for %q", pattern, key)
			return m
		}
		if key == KeyIPAddress {
			return addressReplacer.Replace(v)
		}
		return v
	})
	if err != nil {
		return "", err
	}
	return expanded, nil
}

// FQDN joins a host name and a domain, ignoring a trailing dot on the
// domain.
func FQDN(host, domain string) string {
	domain = strings.TrimSuffix(domain, ".")
	if domain == "" {
		return host
	}
	return host + "." + domain
}

// ValidatePattern checks that every placeholder in pattern is known.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return errors.ErrInvalidArgument("pattern must not be empty")
	}
	for _, m := range placeholder.FindAllStringSubmatch(pattern, -1) {
		if _, ok := knownKeys[m[1]]; !ok {
			return errors.ErrInvalidArgument("pattern %q has unknown placeholder %q", pattern, m[1])
		}
	}
	return nil
}
