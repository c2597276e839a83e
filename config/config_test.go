package config

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack/networking-infoblox/ipam/errors"
	"github.com/openstack/networking-infoblox/ipam/grid"
	"github.com/openstack/networking-infoblox/ipam/naming"
)

const sample = `
cloud_data_center_id: 1
data_centers:
  - id: 1
    grid_master_host: 192.168.1.2
    grid_master_name: gm.infoblox.com
    admin_user_name: admin
    admin_password: infoblox
    wapi_version: "2.2"
    members:
      - name: cpm1.infoblox.com
        ipv4: 192.168.1.3
        type: CPM
        node_status: WORKING
      - name: member2.infoblox.com
        ipv6: "2001:db8::4"
  - id: 2
    grid_master_host: 10.0.0.2
    grid_master_name: gm2.infoblox.com
    admin_user_name: admin
    admin_password: secret
    wapi_version: "2.3.1"
    ssl_verify: true
    http_request_timeout: 30
mapping:
  network_view_scope: Tenant
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 1, c.CloudDataCenterID)
	require.Len(t, c.DataCenters, 2)

	dc, ok := c.DataCenter(1)
	require.True(t, ok)
	assert.Equal(t, "gm.infoblox.com", dc.GridMasterName)
	assert.Equal(t, DefaultHTTPRequestTimeout, dc.HTTPRequestTimeout)
	assert.Equal(t, DefaultWAPIMaxResults, dc.WAPIMaxResults)
	require.Len(t, dc.Members, 2)
	assert.Equal(t, grid.MemberTypeCPMember, dc.Members[0].Type)
	assert.Equal(t, grid.MemberTypeRegular, dc.Members[1].Type)

	dc, ok = c.DataCenter(2)
	require.True(t, ok)
	assert.True(t, dc.SSLVerify)
	assert.Equal(t, 30*time.Second, dc.RequestTimeout())

	_, ok = c.DataCenter(3)
	assert.False(t, ok)

	r, err := c.Resolver()
	require.NoError(t, err)
	assert.Equal(t, naming.ScopeTenant, r.Scope)
	assert.Equal(t, naming.DefaultNetworkView, r.DefaultView)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ibmap.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(sample), 0600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.DataCenters, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConnectionJSON(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)
	dc, _ := c.DataCenter(1)

	blob, err := dc.ConnectionJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(blob), &decoded))
	assert.Equal(t, "2.2", decoded["wapi_version"])
	assert.Equal(t, "192.168.1.2", decoded["grid_master_host"])
	assert.Equal(t, "admin", decoded["wapi_admin_user"].(map[string]interface{})["name"])
	assert.Equal(t, false, decoded["ssl_verify"])
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		c, err := Parse([]byte(sample))
		require.NoError(t, err)
		return c
	}

	for name, mutate := range map[string]func(c *Config){
		"unknown scope":      func(c *Config) { c.Mapping.NetworkViewScope = "Region" },
		"no data centers":    func(c *Config) { c.DataCenters = nil },
		"duplicate id":       func(c *Config) { c.DataCenters[1].ID = 1 },
		"unknown cloud dc":   func(c *Config) { c.CloudDataCenterID = 9 },
		"missing host":       func(c *Config) { c.DataCenters[0].GridMasterHost = "" },
		"missing name":       func(c *Config) { c.DataCenters[0].GridMasterName = "" },
		"missing password":   func(c *Config) { c.DataCenters[0].AdminPassword = "" },
		"old wapi":           func(c *Config) { c.DataCenters[0].WAPIVersion = "1.4.1" },
		"bad wapi":           func(c *Config) { c.DataCenters[0].WAPIVersion = "2." },
		"negative timeout":   func(c *Config) { c.DataCenters[0].HTTPRequestTimeout = -1 },
		"ca without verify":  func(c *Config) { c.DataCenters[0].SSLCAFile = "/etc/ssl/grid.pem" },
		"unnamed member":     func(c *Config) { c.DataCenters[0].Members[0].Name = "" },
		"bad member address": func(c *Config) { c.DataCenters[0].Members[0].IPv4 = "192.168.1" },
		"bad member type":    func(c *Config) { c.DataCenters[0].Members[0].Type = "MASTER" },
	} {
		c := base()
		mutate(c)
		assert.True(t, errors.IsErrInvalidConfig(c.Validate()), name)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("cloud_data_centre_id: 1\n"))
	assert.Error(t, err)
}

func TestTLSConfig(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	dc, _ := c.DataCenter(1)
	cfg, err := dc.TLSConfig()
	require.NoError(t, err)
	assert.True(t, cfg.InsecureSkipVerify)
	assert.Equal(t, "gm.infoblox.com", cfg.ServerName)

	dc, _ = c.DataCenter(2)
	cfg, err = dc.TLSConfig()
	require.NoError(t, err)
	assert.False(t, cfg.InsecureSkipVerify)

	dc.SSLCAFile = filepath.Join(t.TempDir(), "missing.pem")
	_, err = dc.TLSConfig()
	assert.True(t, errors.IsErrInvalidConfig(err))
}
