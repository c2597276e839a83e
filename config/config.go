// Package config loads the YAML configuration of the mapping tools: which
// cloud data center this deployment serves, the grid connection of every
// data center and the mapping defaults used until the grid master provides
// its own.
package config

import (
	"crypto/tls"
	"encoding/json"
	"io/ioutil"
	"time"

	"github.com/docker/go-connections/tlsconfig"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/openstack/networking-infoblox/ipam/errors"
	"github.com/openstack/networking-infoblox/ipam/grid"
	"github.com/openstack/networking-infoblox/ipam/naming"
	"github.com/openstack/networking-infoblox/version"
	"github.com/openstack/networking-infoblox/xnet"
)

// MinWAPIMajor is the oldest WAPI major version the mapping supports.
const MinWAPIMajor = 2

// Defaults applied to missing data center options.
const (
	DefaultWAPIVersion        = "2.2"
	DefaultHTTPRequestTimeout = 120
	DefaultHTTPPoolSize       = 100
	DefaultWAPIMaxResults     = -1000
)

// Config is the root of the configuration file.
type Config struct {
	CloudDataCenterID int          `yaml:"cloud_data_center_id"`
	DataCenters       []DataCenter `yaml:"data_centers"`
	Mapping           Mapping      `yaml:"mapping"`
}

// DataCenter holds the connection to the grid serving one data center.
type DataCenter struct {
	ID                  int      `yaml:"id"`
	GridMasterHost      string   `yaml:"grid_master_host"`
	GridMasterName      string   `yaml:"grid_master_name"`
	AdminUserName       string   `yaml:"admin_user_name"`
	AdminPassword       string   `yaml:"admin_password"`
	WAPIVersion         string   `yaml:"wapi_version"`
	SSLVerify           bool     `yaml:"ssl_verify"`
	SSLCAFile           string   `yaml:"ssl_ca_file"`
	HTTPRequestTimeout  int      `yaml:"http_request_timeout"`
	HTTPPoolConnections int      `yaml:"http_pool_connections"`
	HTTPPoolMaxSize     int      `yaml:"http_pool_maxsize"`
	WAPIMaxResults      int      `yaml:"wapi_max_results"`
	Members             []Member `yaml:"members"`
}

// Member is a grid member known to the data center besides the grid master.
type Member struct {
	Name       string `yaml:"name"`
	IPv4       string `yaml:"ipv4"`
	IPv6       string `yaml:"ipv6"`
	Type       string `yaml:"type"`
	NodeStatus string `yaml:"node_status"`
}

// Mapping holds the network view mapping defaults.
type Mapping struct {
	NetworkViewScope   string `yaml:"network_view_scope"`
	DefaultNetworkView string `yaml:"default_network_view"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "reading config %s", path)
	}
	return Parse(p)
}

// Parse decodes and validates a configuration document.
func Parse(p []byte) (*Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(p, &c); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding config")
	}
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) setDefaults() {
	if c.Mapping.NetworkViewScope == "" {
		c.Mapping.NetworkViewScope = naming.ScopeSingle.String()
	}
	if c.Mapping.DefaultNetworkView == "" {
		c.Mapping.DefaultNetworkView = naming.DefaultNetworkView
	}
	for i := range c.DataCenters {
		dc := &c.DataCenters[i]
		if dc.WAPIVersion == "" {
			dc.WAPIVersion = DefaultWAPIVersion
		}
		if dc.HTTPRequestTimeout == 0 {
			dc.HTTPRequestTimeout = DefaultHTTPRequestTimeout
		}
		if dc.HTTPPoolConnections == 0 {
			dc.HTTPPoolConnections = DefaultHTTPPoolSize
		}
		if dc.HTTPPoolMaxSize == 0 {
			dc.HTTPPoolMaxSize = DefaultHTTPPoolSize
		}
		if dc.WAPIMaxResults == 0 {
			dc.WAPIMaxResults = DefaultWAPIMaxResults
		}
		for j := range dc.Members {
			if dc.Members[j].Type == "" {
				dc.Members[j].Type = grid.MemberTypeRegular
			}
		}
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := naming.ParseScope(c.Mapping.NetworkViewScope); err != nil {
		return errors.ErrInvalidConfig("mapping.network_view_scope", "%v", err)
	}
	if len(c.DataCenters) == 0 {
		return errors.ErrInvalidConfig("data_centers", "at least one data center is required")
	}
	seen := make(map[int]struct{}, len(c.DataCenters))
	for i := range c.DataCenters {
		dc := &c.DataCenters[i]
		if _, ok := seen[dc.ID]; ok {
			return errors.ErrInvalidConfig("data_centers", "duplicate data center id %d", dc.ID)
		}
		seen[dc.ID] = struct{}{}
		if err := dc.Validate(); err != nil {
			return err
		}
	}
	if _, ok := c.DataCenter(c.CloudDataCenterID); !ok {
		return errors.ErrInvalidConfig("cloud_data_center_id", "no data center with id %d", c.CloudDataCenterID)
	}
	return nil
}

// DataCenter returns the data center with the given id.
func (c *Config) DataCenter(id int) (*DataCenter, bool) {
	for i := range c.DataCenters {
		if c.DataCenters[i].ID == id {
			return &c.DataCenters[i], true
		}
	}
	return nil, false
}

// Resolver returns the network view resolver for the mapping defaults.
func (c *Config) Resolver() (naming.Resolver, error) {
	scope, err := naming.ParseScope(c.Mapping.NetworkViewScope)
	if err != nil {
		return naming.Resolver{}, errors.ErrInvalidConfig("mapping.network_view_scope", "%v", err)
	}
	return naming.Resolver{Scope: scope, DefaultView: c.Mapping.DefaultNetworkView}, nil
}

// Validate checks the data center options.
func (dc *DataCenter) Validate() error {
	if dc.GridMasterHost == "" {
		return errors.ErrInvalidConfig("grid_master_host", "required for data center %d", dc.ID)
	}
	if dc.GridMasterName == "" {
		return errors.ErrInvalidConfig("grid_master_name", "required for data center %d", dc.ID)
	}
	if dc.AdminUserName == "" || dc.AdminPassword == "" {
		return errors.ErrInvalidConfig("admin_user_name", "admin credentials are required for data center %d", dc.ID)
	}
	major, ok, err := version.Major(dc.WAPIVersion)
	if err != nil || !ok {
		return errors.ErrInvalidConfig("wapi_version", "cannot parse %q", dc.WAPIVersion)
	}
	if major < MinWAPIMajor {
		return errors.ErrInvalidConfig("wapi_version", "%s is older than %d.0", dc.WAPIVersion, MinWAPIMajor)
	}
	if dc.SSLCAFile != "" && !dc.SSLVerify {
		return errors.ErrInvalidConfig("ssl_ca_file", "set for data center %d without ssl_verify", dc.ID)
	}
	if dc.HTTPRequestTimeout < 0 {
		return errors.ErrInvalidConfig("http_request_timeout", "must not be negative")
	}
	for _, m := range dc.Members {
		if m.Name == "" {
			return errors.ErrInvalidConfig("members", "member without a name in data center %d", dc.ID)
		}
		if m.IPv4 != "" && !xnet.IsValidIP(m.IPv4) {
			return errors.ErrInvalidConfig("members", "member %s has invalid address %q", m.Name, m.IPv4)
		}
		if m.IPv6 != "" && !xnet.IsValidIP(m.IPv6) {
			return errors.ErrInvalidConfig("members", "member %s has invalid address %q", m.Name, m.IPv6)
		}
		switch m.Type {
		case grid.MemberTypeGridMaster, grid.MemberTypeCPMember, grid.MemberTypeRegular:
		default:
			return errors.ErrInvalidConfig("members", "member %s has unknown type %q", m.Name, m.Type)
		}
	}
	return nil
}

// RequestTimeout returns the HTTP request timeout.
func (dc *DataCenter) RequestTimeout() time.Duration {
	return time.Duration(dc.HTTPRequestTimeout) * time.Second
}

// TLSConfig returns the client TLS configuration for the grid master. The
// system roots are used unless ssl_ca_file is set.
func (dc *DataCenter) TLSConfig() (*tls.Config, error) {
	cfg, err := tlsconfig.Client(tlsconfig.Options{
		CAFile:             dc.SSLCAFile,
		InsecureSkipVerify: !dc.SSLVerify,
	})
	if err != nil {
		return nil, errors.ErrInvalidConfig("ssl_ca_file", "%v", err)
	}
	cfg.ServerName = dc.GridMasterName
	return cfg, nil
}

type adminUser struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type connection struct {
	GridMasterHost      string    `json:"grid_master_host"`
	GridMasterName      string    `json:"grid_master_name"`
	WAPIVersion         string    `json:"wapi_version"`
	WAPIAdminUser       adminUser `json:"wapi_admin_user"`
	SSLVerify           bool      `json:"ssl_verify"`
	HTTPRequestTimeout  int       `json:"http_request_timeout"`
	HTTPPoolConnections int       `json:"http_pool_connections"`
	HTTPPoolMaxSize     int       `json:"http_pool_maxsize"`
	WAPIMaxResults      int       `json:"wapi_max_results"`
}

// ConnectionJSON returns the grid connection blob stored with the grid.
func (dc *DataCenter) ConnectionJSON() (string, error) {
	p, err := json.Marshal(connection{
		GridMasterHost:      dc.GridMasterHost,
		GridMasterName:      dc.GridMasterName,
		WAPIVersion:         dc.WAPIVersion,
		WAPIAdminUser:       adminUser{Name: dc.AdminUserName, Password: dc.AdminPassword},
		SSLVerify:           dc.SSLVerify,
		HTTPRequestTimeout:  dc.HTTPRequestTimeout,
		HTTPPoolConnections: dc.HTTPPoolConnections,
		HTTPPoolMaxSize:     dc.HTTPPoolMaxSize,
		WAPIMaxResults:      dc.WAPIMaxResults,
	})
	if err != nil {
		return "", pkgerrors.Wrap(err, "encoding grid connection")
	}
	return string(p), nil
}
