// Package objref decodes the object references handed out by the grid.
//
// A reference has the form
//
//	<object-type>/<object-id>:<suffix>
//
// where the object id never contains '/' or ':' and the suffix is free text
// whose meaning depends on the type. Network references carry
// "<cidr>/<network view>" in the suffix, with the colons of IPv6 addresses
// percent-escaped.
//
// References come from the grid, so every decoder here reports a malformed
// reference as a miss instead of an error.
package objref

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/openstack/networking-infoblox/log"
)

// Object types that carry a network suffix.
const (
	TypeNetwork     = "network"
	TypeIPv6Network = "ipv6network"
	TypeNetworkView = "networkview"
)

// Network is the identity recovered from a network reference.
type Network struct {
	ObjectID    string `json:"object_id"`
	NetworkView string `json:"network_view"`
	CIDR        string `json:"cidr"`
}

type parts struct {
	objectType string
	objectID   string
	suffix     string
}

func split(ref string) (parts, bool) {
	slash := strings.Index(ref, "/")
	if slash < 0 {
		return parts{}, false
	}
	rest := ref[slash+1:]
	colon := strings.Index(rest, ":")
	if colon < 0 {
		return parts{}, false
	}
	return parts{
		objectType: ref[:slash],
		objectID:   rest[:colon],
		suffix:     rest[colon+1:],
	}, true
}

// ObjectID returns the object id segment of ref: the text between the first
// '/' and the ':' that follows it.
func ObjectID(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	p, ok := split(ref)
	if !ok {
		miss(ref, "missing delimiters")
		return "", false
	}
	return p.objectID, true
}

// ObjectType returns the leading type token of ref, for example "network" or
// "member:license".
func ObjectType(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	p, ok := split(ref)
	if !ok || p.objectType == "" {
		miss(ref, "missing object type")
		return "", false
	}
	return p.objectType, true
}

// ParseNetwork decodes a network or ipv6network reference. The suffix is
// split on its last '/': the left side, percent-decoded, is the CIDR and the
// right side is the network view.
func ParseNetwork(ref string) (*Network, bool) {
	if ref == "" {
		return nil, false
	}
	p, ok := split(ref)
	if !ok {
		miss(ref, "missing delimiters")
		return nil, false
	}
	if p.objectType != TypeNetwork && p.objectType != TypeIPv6Network {
		miss(ref, "not a network reference")
		return nil, false
	}

	last := strings.LastIndex(p.suffix, "/")
	if last < 0 {
		miss(ref, "suffix has no network view")
		return nil, false
	}
	view := p.suffix[last+1:]
	cidr, err := url.PathUnescape(p.suffix[:last])
	if err != nil {
		miss(ref, "cidr is not correctly escaped")
		return nil, false
	}
	if view == "" || cidr == "" {
		miss(ref, "empty cidr or network view")
		return nil, false
	}

	return &Network{
		ObjectID:    p.objectID,
		NetworkView: view,
		CIDR:        cidr,
	}, true
}

func miss(ref, reason string) {
	log.L.WithFields(logrus.Fields{
		"ref":    ref,
		"reason": reason,
	}).Debug("unrecognized object reference")
}
