package ea

// CloudPlatformType is the attribute every object created through this layer
// carries; its value identifies OpenStack as the managing platform.
const (
	CloudPlatformType      = "CMP Type"
	CloudPlatformTypeValue = "OpenStack"
)

// Grid configuration attributes, read from the grid master object.
const (
	GridSyncSupport                = "Grid Sync Support"
	GridSyncMinimumWaitTime        = "Grid Sync Minimum Wait Time"
	DefaultNetworkViewScope        = "Default Network View Scope"
	DefaultNetworkView             = "Default Network View"
	DefaultHostNamePattern         = "Default Host Name Pattern"
	DefaultDomainNamePattern       = "Default Domain Name Pattern"
	NSGroup                        = "NS Group"
	DNSView                        = "DNS View"
	NetworkTemplate                = "Network Template"
	AdminNetworkDeletion           = "Admin Network Deletion"
	IPAllocationStrategy           = "IP Allocation Strategy"
	DNSRecordBindingTypes          = "DNS Record Binding Types"
	DNSRecordUnbindingTypes        = "DNS Record Unbinding Types"
	DNSRecordRemovableTypes        = "DNS Record Removable Types"
	DHCPRelayManagementNetworkView = "DHCP Relay Management Network View"
	DHCPRelayManagementNetwork     = "DHCP Relay Management Network"
	DHCPSupport                    = "DHCP Support"
)

// Network view mapping attributes. Their values may be lists.
const (
	MappingAddressScopeID   = "Address Scope ID Mapping"
	MappingAddressScopeName = "Address Scope Name Mapping"
	MappingTenantID         = "Tenant ID Mapping"
	MappingTenantName       = "Tenant Name Mapping"
	MappingTenantCIDR       = "Tenant CIDR Mapping"
	MappingNetworkID        = "Network ID Mapping"
	MappingNetworkName      = "Network Name Mapping"
	MappingSubnetID         = "Subnet ID Mapping"
	MappingSubnetCIDR       = "Subnet CIDR Mapping"
)

// Object attributes carrying OpenStack identity.
const (
	SubnetID            = "Subnet ID"
	SubnetName          = "Subnet Name"
	NetworkID           = "Network ID"
	NetworkName         = "Network Name"
	NetworkEncap        = "Network Encap"
	SegmentationID      = "Segmentation ID"
	PhysicalNetworkName = "Physical Network Name"
	PortID              = "Port ID"
	PortDeviceOwner     = "Port Attached Device - Device Owner"
	PortDeviceID        = "Port Attached Device - Device ID"
	VMID                = "VM ID"
	IPType              = "IP Type"
	TenantID            = "Tenant ID"
	Account             = "Account"
	CloudAPIOwned       = "Cloud API Owned"
	IsExternal          = "Is External"
	IsShared            = "Is Shared"
)

// Values of the IPType attribute.
const (
	IPTypeFixed    = "Fixed"
	IPTypeFloating = "Floating"
)
