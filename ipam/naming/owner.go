package naming

// Device owners of ports that Neutron creates for its own services.
const (
	DeviceOwnerDHCP            = "network:dhcp"
	DeviceOwnerRouterInterface = "network:router_interface"
	DeviceOwnerRouterGateway   = "network:router_gateway"
	DeviceOwnerFloatingIP      = "network:floatingip"
	DeviceOwnerLoadBalancer    = "neutron:LOADBALANCER"
	DeviceOwnerComputePrefix   = "compute:"
)

var (
	ownerPatterns = map[string]string{
		DeviceOwnerDHCP:            "dhcp-port-{ip_address}",
		DeviceOwnerRouterInterface: "router-iface-{ip_address}",
		DeviceOwnerRouterGateway:   "router-gw-{ip_address}",
		DeviceOwnerFloatingIP:      "floating-ip-{ip_address}",
		DeviceOwnerLoadBalancer:    "lb-vip-{ip_address}",
	}

	internalServiceOwners = map[string]struct{}{
		DeviceOwnerDHCP:            {},
		DeviceOwnerRouterInterface: {},
		DeviceOwnerRouterGateway:   {},
		DeviceOwnerLoadBalancer:    {},
	}
)

// DHCPPortNamePattern returns the host name pattern for ports owned by a
// Neutron service. Ports of other owners are named by the configured host
// name pattern instead.
func DHCPPortNamePattern(deviceOwner string) (string, bool) {
	pattern, ok := ownerPatterns[deviceOwner]
	return pattern, ok
}

// IsInternalServiceOwner reports whether deviceOwner is one of the Neutron
// services whose ports are never bound to instances. Floating IPs are not
// included.
func IsInternalServiceOwner(deviceOwner string) bool {
	_, ok := internalServiceOwners[deviceOwner]
	return ok
}
