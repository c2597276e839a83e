package naming

import "github.com/openstack/networking-infoblox/ipam/errors"

// DefaultNetworkView is the view every grid has out of the box.
const DefaultNetworkView = "default"

// NetworkViewName returns id, prefixed with prefix and a dash when prefix is
// not empty. An empty id is an invalid argument.
func NetworkViewName(id, prefix string) (string, error) {
	if id == "" {
		return "", errors.ErrInvalidArgument("network view identifier must not be empty")
	}
	if prefix == "" {
		return id, nil
	}
	return prefix + "-" + id, nil
}
