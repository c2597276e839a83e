// Package gridconfig reads the grid-wide settings stored as extensible
// attributes on the grid master member.
package gridconfig

import (
	"strconv"
	"time"

	"github.com/openstack/networking-infoblox/ipam/ea"
	"github.com/openstack/networking-infoblox/ipam/errors"
	"github.com/openstack/networking-infoblox/ipam/naming"
	"github.com/openstack/networking-infoblox/ipam/query"
	"github.com/openstack/networking-infoblox/log"
)

// IP allocation strategies.
const (
	AllocationHostRecord   = "Host Record"
	AllocationFixedAddress = "Fixed Address"
)

// Defaults for attributes missing on the grid master.
const (
	DefaultHostNamePattern   = "host-{" + naming.KeyIPAddress + "}"
	DefaultDomainNamePattern = "{" + naming.KeySubnetID + "}.cloud.global.com"
	DefaultDNSView           = "default"
	DefaultSyncWaitTime      = 60 * time.Second
)

const listDelimiter = ","

// Config is the typed grid configuration.
type Config struct {
	NetworkViewScope        naming.Scope
	DefaultNetworkView      string
	HostNamePattern         string
	DomainNamePattern       string
	NSGroup                 string
	DNSView                 string
	NetworkTemplate         string
	AdminNetworkDeletion    bool
	IPAllocationStrategy    string
	DNSRecordBindingTypes   []string
	DNSRecordUnbindingTypes []string
	DNSRecordRemovableTypes []string
	RelayNetworkView        string
	RelayNetwork            string
	DHCPSupport             bool
	GridSyncSupport         bool
	GridSyncMinimumWaitTime time.Duration
}

// Default returns the configuration used when the grid master carries no
// attributes.
func Default() *Config {
	return &Config{
		NetworkViewScope:        naming.ScopeSingle,
		DefaultNetworkView:      naming.DefaultNetworkView,
		HostNamePattern:         DefaultHostNamePattern,
		DomainNamePattern:       DefaultDomainNamePattern,
		DNSView:                 DefaultDNSView,
		IPAllocationStrategy:    AllocationFixedAddress,
		DNSRecordBindingTypes:   []string{},
		DNSRecordUnbindingTypes: []string{},
		DNSRecordRemovableTypes: []string{},
		GridSyncSupport:         true,
		GridSyncMinimumWaitTime: DefaultSyncWaitTime,
	}
}

// Resolver returns the network view resolver for the configured scope.
func (c *Config) Resolver() naming.Resolver {
	return naming.Resolver{Scope: c.NetworkViewScope, DefaultView: c.DefaultNetworkView}
}

// FromEAs reads the configuration from an object carrying grid
// configuration attributes, usually the grid master member. Missing
// attributes keep their defaults; attributes with invalid values are
// reported as invalid config.
func FromEAs(obj map[string]interface{}) (*Config, error) {
	c := Default()
	if obj == nil {
		return c, nil
	}

	if s, ok := ea.GetString(ea.DefaultNetworkViewScope, obj); ok {
		scope, err := naming.ParseScope(s)
		if err != nil {
			return nil, errors.ErrInvalidConfig(ea.DefaultNetworkViewScope, "%v", err)
		}
		c.NetworkViewScope = scope
	}
	strs := []struct {
		name string
		dst  *string
	}{
		{ea.DefaultNetworkView, &c.DefaultNetworkView},
		{ea.DefaultHostNamePattern, &c.HostNamePattern},
		{ea.DefaultDomainNamePattern, &c.DomainNamePattern},
		{ea.NSGroup, &c.NSGroup},
		{ea.DNSView, &c.DNSView},
		{ea.NetworkTemplate, &c.NetworkTemplate},
		{ea.IPAllocationStrategy, &c.IPAllocationStrategy},
		{ea.DHCPRelayManagementNetworkView, &c.RelayNetworkView},
		{ea.DHCPRelayManagementNetwork, &c.RelayNetwork},
	}
	for _, f := range strs {
		if s, ok := ea.GetString(f.name, obj); ok && s != "" {
			*f.dst = s
		}
	}

	switch c.IPAllocationStrategy {
	case AllocationHostRecord, AllocationFixedAddress:
	default:
		return nil, errors.ErrInvalidConfig(ea.IPAllocationStrategy, "unknown strategy %q", c.IPAllocationStrategy)
	}
	for name, p := range map[string]string{
		ea.DefaultHostNamePattern:   c.HostNamePattern,
		ea.DefaultDomainNamePattern: c.DomainNamePattern,
	} {
		if err := naming.ValidatePattern(p); err != nil {
			return nil, errors.ErrInvalidConfig(name, "%v", err)
		}
	}

	lists := []struct {
		name string
		dst  *[]string
	}{
		{ea.DNSRecordBindingTypes, &c.DNSRecordBindingTypes},
		{ea.DNSRecordUnbindingTypes, &c.DNSRecordUnbindingTypes},
		{ea.DNSRecordRemovableTypes, &c.DNSRecordRemovableTypes},
	}
	for _, f := range lists {
		types, err := recordTypes(f.name, obj)
		if err != nil {
			return nil, err
		}
		if types != nil {
			*f.dst = types
		}
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{ea.AdminNetworkDeletion, &c.AdminNetworkDeletion},
		{ea.DHCPSupport, &c.DHCPSupport},
		{ea.GridSyncSupport, &c.GridSyncSupport},
	}
	for _, f := range bools {
		if ea.Get(f.name, obj, false) == nil {
			continue
		}
		b, ok := ea.GetBool(f.name, obj)
		if !ok {
			return nil, errors.ErrInvalidConfig(f.name, "not a boolean")
		}
		*f.dst = b
	}

	if v := ea.Get(ea.GridSyncMinimumWaitTime, obj, false); v != nil {
		d, err := seconds(v)
		if err != nil {
			return nil, errors.ErrInvalidConfig(ea.GridSyncMinimumWaitTime, "%v", err)
		}
		c.GridSyncMinimumWaitTime = d
	}

	log.L.WithField("scope", c.NetworkViewScope).Debug("loaded grid configuration")
	return c, nil
}

// recordTypes reads a DNS record type list. The grid stores these either as
// a list attribute or as one comma separated string.
func recordTypes(name string, obj map[string]interface{}) ([]string, error) {
	if s, ok := ea.GetString(name, obj); ok {
		if s == "" {
			return []string{}, nil
		}
		return query.SplitList(s, listDelimiter)
	}
	if ea.Get(name, obj, true) == nil {
		return nil, nil
	}
	l, ok := ea.GetList(name, obj)
	if !ok {
		return nil, errors.ErrInvalidConfig(name, "not a list of record types")
	}
	return l, nil
}

func seconds(v interface{}) (time.Duration, error) {
	var n int
	switch s := v.(type) {
	case string:
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		n = i
	case int:
		n = s
	case float64:
		n = int(s)
	default:
		return 0, errors.ErrInvalidArgument("unsupported value %v", v)
	}
	if n < 0 {
		return 0, errors.ErrInvalidArgument("negative wait time %d", n)
	}
	return time.Duration(n) * time.Second, nil
}
