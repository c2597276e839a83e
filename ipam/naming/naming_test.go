package naming

import (
	"github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/openstack/networking-infoblox/ipam/errors"
)

var _ = ginkgo.Describe("NetworkViewName", func() {
	ginkgo.It("should reject an empty identifier", func() {
		for _, prefix := range []string{"", "hi"} {
			_, err := NetworkViewName("", prefix)
			Expect(err).To(HaveOccurred())
			Expect(errors.IsErrInvalidArgument(err)).To(BeTrue())
		}
	})
	ginkgo.It("should return the identifier when there is no prefix", func() {
		Expect(NetworkViewName("1234", "")).To(Equal("1234"))
		Expect(NetworkViewName("123", "")).To(Equal("123"))
	})
	ginkgo.It("should join prefix and identifier with a dash", func() {
		Expect(NetworkViewName("23", "hi")).To(Equal("hi-23"))
	})
})

var _ = ginkgo.Describe("DHCPPortNamePattern", func() {
	table.DescribeTable("known service owners",
		func(owner, pattern string) {
			p, ok := DHCPPortNamePattern(owner)
			Expect(ok).To(BeTrue())
			Expect(p).To(Equal(pattern))
		},
		table.Entry("dhcp", DeviceOwnerDHCP, "dhcp-port-{ip_address}"),
		table.Entry("router interface", DeviceOwnerRouterInterface, "router-iface-{ip_address}"),
		table.Entry("router gateway", DeviceOwnerRouterGateway, "router-gw-{ip_address}"),
		table.Entry("floating ip", DeviceOwnerFloatingIP, "floating-ip-{ip_address}"),
		table.Entry("load balancer", DeviceOwnerLoadBalancer, "lb-vip-{ip_address}"),
	)
	ginkgo.It("should miss for instance ports", func() {
		_, ok := DHCPPortNamePattern("compute:nova")
		Expect(ok).To(BeFalse())
	})
	ginkgo.It("should not treat floating ips as internal services", func() {
		Expect(IsInternalServiceOwner(DeviceOwnerDHCP)).To(BeTrue())
		Expect(IsInternalServiceOwner(DeviceOwnerLoadBalancer)).To(BeTrue())
		Expect(IsInternalServiceOwner(DeviceOwnerFloatingIP)).To(BeFalse())
		Expect(IsInternalServiceOwner("compute:nova")).To(BeFalse())
	})
})

var _ = ginkgo.Describe("IPv4SubnetKey", func() {
	table.DescribeTable("subnets outside the pooled range",
		func(cidr, name string) {
			_, ok := IPv4SubnetKey(cidr, name)
			Expect(ok).To(BeFalse())
		},
		table.Entry("ipv6", "2001:db8:85a3::/64", ""),
		table.Entry("a /24", "11.11.1.1/24", ""),
		table.Entry("a named /24", "11.11.1.1/24", "sub1"),
		table.Entry("a /16", "10.0.0.0/16", ""),
		table.Entry("garbage", "not-a-cidr", ""),
	)
	table.DescribeTable("small subnets",
		func(cidr, name, expected string) {
			key, ok := IPv4SubnetKey(cidr, name)
			Expect(ok).To(BeTrue())
			Expect(key).To(Equal(expected))
		},
		table.Entry("a /25", "11.11.1.1/25", "", "11-11-1-1-25"),
		table.Entry("a named /25", "11.11.1.1/25", "sub1", "sub1"),
		table.Entry("a /29", "11.11.1.1/29", "", "11-11-1-1-29"),
		table.Entry("a /32", "11.11.1.1/32", "", "11-11-1-1-32"),
	)
})

var _ = ginkgo.Describe("Scope", func() {
	ginkgo.It("should round trip the grid spelling", func() {
		for _, s := range []Scope{ScopeSingle, ScopeAddressScope, ScopeTenant, ScopeNetwork, ScopeSubnet} {
			parsed, err := ParseScope(s.String())
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(s))
		}
		Expect(ScopeAddressScope.String()).To(Equal("Address Scope"))
	})
	ginkgo.It("should reject unknown scopes", func() {
		_, err := ParseScope("Everything")
		Expect(errors.IsErrInvalidArgument(err)).To(BeTrue())

		var s Scope
		Expect(s.UnmarshalText([]byte("tenant"))).To(HaveOccurred())
		Expect(s.UnmarshalText([]byte("Tenant"))).To(Succeed())
		Expect(s).To(Equal(ScopeTenant))

		_, err = Scope(42).MarshalText()
		Expect(err).To(HaveOccurred())
	})
})

var _ = ginkgo.Describe("Resolver", func() {
	var c Context

	ginkgo.BeforeEach(func() {
		c = Context{
			TenantID:         "tenant-1",
			TenantName:       "admin",
			AddressScopeID:   "as-1",
			AddressScopeName: "corp",
			NetworkID:        "net-1",
			SubnetID:         "sub-1",
			SubnetName:       "web",
		}
	})

	ginkgo.It("should use the default view for a single scope", func() {
		Expect(Resolver{Scope: ScopeSingle}.NetworkView(c)).To(Equal(DefaultNetworkView))
		Expect(Resolver{Scope: ScopeSingle, DefaultView: "cloud"}.NetworkView(c)).To(Equal("cloud"))
	})
	ginkgo.It("should name the view after the scoped object", func() {
		Expect(Resolver{Scope: ScopeAddressScope}.NetworkView(c)).To(Equal("corp-as-1"))
		Expect(Resolver{Scope: ScopeTenant}.NetworkView(c)).To(Equal("admin-tenant-1"))
		Expect(Resolver{Scope: ScopeNetwork}.NetworkView(c)).To(Equal("net-1"))
		Expect(Resolver{Scope: ScopeSubnet}.NetworkView(c)).To(Equal("web-sub-1"))
	})
	ginkgo.It("should fall back to the tenant without an address scope", func() {
		c.AddressScopeID = ""
		Expect(Resolver{Scope: ScopeAddressScope}.NetworkView(c)).To(Equal("admin-tenant-1"))
	})
	ginkgo.It("should fail when the scoped identifier is missing", func() {
		c.NetworkID = ""
		_, err := Resolver{Scope: ScopeNetwork}.NetworkView(c)
		Expect(errors.IsErrInvalidArgument(err)).To(BeTrue())

		_, err = Resolver{Scope: Scope(9)}.NetworkView(c)
		Expect(errors.IsErrInvalidArgument(err)).To(BeTrue())
	})
})

var _ = ginkgo.Describe("ExpandPattern", func() {
	ginkgo.It("should expand known placeholders", func() {
		name, err := ExpandPattern("host-{ip_address}", Values{KeyIPAddress: "11.11.1.2"})
		Expect(err).ToNot(HaveOccurred())
		Expect(name).To(Equal("host-11-11-1-2"))

		name, err = ExpandPattern("{instance_name}.{tenant_name}", Values{
			KeyInstanceName: "vm1",
			KeyTenantName:   "admin",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(name).To(Equal("vm1.admin"))

		name, err = ExpandPattern("v6-{ip_address}", Values{KeyIPAddress: "2001:db8::5"})
		Expect(err).ToNot(HaveOccurred())
		Expect(name).To(Equal("v6-2001-db8--5"))
	})
	ginkgo.It("should leave patterns without placeholders alone", func() {
		Expect(ExpandPattern("cloud.example.com", nil)).To(Equal("cloud.example.com"))
	})
	ginkgo.It("should reject unknown or unset placeholders", func() {
		_, err := ExpandPattern("host-{mac}", Values{"mac": "x"})
		Expect(errors.IsErrInvalidArgument(err)).To(BeTrue())

		_, err = ExpandPattern("{network_name}.cloud", Values{})
		Expect(errors.IsErrInvalidArgument(err)).To(BeTrue())

		_, err = ExpandPattern("", Values{})
		Expect(errors.IsErrInvalidArgument(err)).To(BeTrue())
	})
	ginkgo.It("should join host and domain", func() {
		Expect(FQDN("host-1", "cloud.example.com.")).To(Equal("host-1.cloud.example.com"))
		Expect(FQDN("host-1", "")).To(Equal("host-1"))
	})
})

var _ = ginkgo.Describe("ValidatePattern", func() {
	ginkgo.It("should accept known placeholders", func() {
		Expect(ValidatePattern("host-{ip_address}")).To(Succeed())
		Expect(ValidatePattern("{subnet_id}.cloud.global.com")).To(Succeed())
		Expect(ValidatePattern("static.example.com")).To(Succeed())
	})
	ginkgo.It("should reject unknown placeholders and empty patterns", func() {
		Expect(errors.IsErrInvalidArgument(ValidatePattern("{mac}.example.com"))).To(BeTrue())
		Expect(errors.IsErrInvalidArgument(ValidatePattern(""))).To(BeTrue())
	})
})
