// Package identity generates the identifiers this layer hands to the grid
// and derives from its data.
//
// DHCPv6 client identifiers
//
// Fixed addresses allocated for IPv6 ports need a DUID. NewDUID embeds the
// port MAC address after a 23-bit prefix:
//
// 	00:4f:a1:07:fa:16:3e:bd:ce:14
//
// The prefix starts at a random value and increments on every call, so a
// process never hands out the same DUID twice for a MAC until the prefix
// space wraps.
//
// Hashes
//
// Hash returns a fixed length digest used for cache keys and member ids. It
// is not meant to be cryptographically strong.
package identity
