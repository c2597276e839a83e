package objref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectID(t *testing.T) {
	for _, tc := range []struct {
		ref    string
		expect string
		ok     bool
	}{
		{ref: ""},
		{ref: "no-delimiters-at-all"},
		{ref: "networkview/ZG5zLm5ldHdvcmtfdmlldyQw"},
		{
			ref:    "networkview/ZG5zLm5ldHdvcmtfdmlldyQw:default/true",
			expect: "ZG5zLm5ldHdvcmtfdmlldyQw",
			ok:     true,
		},
		{
			// the type token itself contains a colon
			ref:    "member:license/b25lLnByb2R1Y3RfbGljZW5zZSQwLHZuaW9zLDA:VNIOS/Static",
			expect: "b25lLnByb2R1Y3RfbGljZW5zZSQwLHZuaW9zLDA",
			ok:     true,
		},
	} {
		oid, ok := ObjectID(tc.ref)
		assert.Equal(t, tc.ok, ok, tc.ref)
		assert.Equal(t, tc.expect, oid, tc.ref)
	}
}

func TestObjectType(t *testing.T) {
	typ, ok := ObjectType("member:license/b25lLnByb2R1Y3RfbGljZW5zZSQwLHZuaW9zLDA:VNIOS/Static")
	require.True(t, ok)
	assert.Equal(t, "member:license", typ)

	typ, ok = ObjectType("ipv6network/ZG5z:2001%3Adb8%3A%3A/64/default")
	require.True(t, ok)
	assert.Equal(t, TypeIPv6Network, typ)

	_, ok = ObjectType("")
	assert.False(t, ok)
	_, ok = ObjectType("/abc:def")
	assert.False(t, ok)
}

func TestParseNetwork(t *testing.T) {
	for _, tc := range []struct {
		name   string
		ref    string
		expect *Network
	}{
		{name: "empty"},
		{
			name: "ipv4",
			ref:  "network/ZG5zLm5ldHdvcmskMTQuMTQuMS4wLzI0LzQ:14.14.1.0/24/hs-view-4",
			expect: &Network{
				ObjectID:    "ZG5zLm5ldHdvcmskMTQuMTQuMS4wLzI0LzQ",
				NetworkView: "hs-view-4",
				CIDR:        "14.14.1.0/24",
			},
		},
		{
			name: "ipv6 escaped colons",
			ref:  "ipv6network/ZG5zLm5ldHdvcmskMjAwMTpkYjg6ODVhMzo6LzY0LzA:2001%3Adb8%3A85a3%3A%3A/64/default",
			expect: &Network{
				ObjectID:    "ZG5zLm5ldHdvcmskMjAwMTpkYjg6ODVhMzo6LzY0LzA",
				NetworkView: "default",
				CIDR:        "2001:db8:85a3::/64",
			},
		},
		{
			name: "not a network type",
			ref:  "networkview/ZG5zLm5ldHdvcmtfdmlldyQw:default/true",
		},
		{
			name: "no view",
			ref:  "network/ZG5zLm5ldHdvcmskMTQ:14.14.1.0",
		},
		{
			name: "empty view",
			ref:  "network/ZG5zLm5ldHdvcmskMTQ:14.14.1.0/24/",
		},
		{
			name: "bad escaping",
			ref:  "ipv6network/ZG5z:2001%3Gdb8/64/default",
		},
		{
			name: "missing colon",
			ref:  "network/ZG5zLm5ldHdvcmskMTQ",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			network, ok := ParseNetwork(tc.ref)
			if tc.expect == nil {
				assert.False(t, ok)
				assert.Nil(t, network)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.expect, network)
		})
	}
}
