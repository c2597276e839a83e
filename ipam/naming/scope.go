package naming

import (
	"fmt"

	"github.com/openstack/networking-infoblox/ipam/errors"
)

// Scope selects what a network view is derived from.
type Scope int

// Scope policies, as stored in the "Default Network View Scope" attribute.
const (
	ScopeSingle Scope = iota
	ScopeAddressScope
	ScopeTenant
	ScopeNetwork
	ScopeSubnet
)

var scopeNames = map[Scope]string{
	ScopeSingle:       "Single",
	ScopeAddressScope: "Address Scope",
	ScopeTenant:       "Tenant",
	ScopeNetwork:      "Network",
	ScopeSubnet:       "Subnet",
}

// String returns the grid spelling of the scope.
func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// ParseScope parses the grid spelling of a scope policy.
func ParseScope(s string) (Scope, error) {
	for scope, name := range scopeNames {
		if name == s {
			return scope, nil
		}
	}
	return ScopeSingle, errors.ErrInvalidArgument("unknown network view scope %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	if _, ok := scopeNames[s]; !ok {
		return nil, errors.ErrInvalidArgument("unknown network view scope %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error {
	parsed, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Context carries the OpenStack identity a network view can be derived
// from. Names are optional; ids are required by the scopes that use them.
type Context struct {
	TenantID         string
	TenantName       string
	AddressScopeID   string
	AddressScopeName string
	NetworkID        string
	NetworkName      string
	SubnetID         string
	SubnetName       string
}

// Resolver computes network view names for a scope policy.
type Resolver struct {
	Scope Scope

	// DefaultView names the view used by ScopeSingle. DefaultNetworkView is
	// used when it is empty.
	DefaultView string
}

// NetworkView returns the network view for c. Scopes other than
// ScopeSingle name the view after the scoped object's id, prefixed with its
// name when it has one. A network without an address scope falls back to
// the tenant under ScopeAddressScope.
func (r Resolver) NetworkView(c Context) (string, error) {
	switch r.Scope {
	case ScopeSingle:
		if r.DefaultView == "" {
			return DefaultNetworkView, nil
		}
		return r.DefaultView, nil
	case ScopeAddressScope:
		if c.AddressScopeID != "" {
			return NetworkViewName(c.AddressScopeID, c.AddressScopeName)
		}
		return NetworkViewName(c.TenantID, c.TenantName)
	case ScopeTenant:
		return NetworkViewName(c.TenantID, c.TenantName)
	case ScopeNetwork:
		return NetworkViewName(c.NetworkID, c.NetworkName)
	case ScopeSubnet:
		return NetworkViewName(c.SubnetID, c.SubnetName)
	}
	return "", errors.ErrInvalidArgument("unknown network view scope %d", int(r.Scope))
}
