// Package naming derives the names this layer uses on the grid: network view
// names under the configured scope policy, DHCP port host names, DNS names
// built from patterns, and the keys that group small IPv4 subnets.
//
// Every function is a pure function of its arguments and of the read-only
// tables in this package.
package naming
