// Package grid defines the grid and grid member records kept for each
// connected Infoblox grid.
package grid

import (
	"time"

	"github.com/openstack/networking-infoblox/ipam/errors"
	"github.com/openstack/networking-infoblox/ipam/marshal"
)

// Grid statuses.
const (
	StatusOn  = "ON"
	StatusOff = "OFF"
)

// Member node statuses as reported by the grid.
const (
	NodeStatusFailed   = "FAILED"
	NodeStatusInactive = "INACTIVE"
	NodeStatusWarning  = "WARNING"
	NodeStatusWorking  = "WORKING"
)

// Member types.
const (
	MemberTypeGridMaster = "GM"
	MemberTypeCPMember   = "CPM"
	MemberTypeRegular    = "REGULAR"
)

// Member license types.
const (
	// LicenseCloud is the Cloud Network Automation license of a grid master.
	LicenseCloud = "CLOUD"
	// LicenseCloudAPI is the cloud platform license of a CP member.
	LicenseCloudAPI = "CLOUD_API"
)

// Column names of grid and member rows.
const (
	ColGridID         = "grid_id"
	ColGridName       = "grid_name"
	ColGridConnection = "grid_connection"
	ColGridStatus     = "grid_status"

	ColMemberID     = "member_id"
	ColMemberName   = "member_name"
	ColMemberIPv4   = "member_ip"
	ColMemberIPv6   = "member_ipv6"
	ColMemberType   = "member_type"
	ColMemberStatus = "member_status"
)

// GridSchema marks the JSON blob columns of grid rows.
var GridSchema = marshal.Schema{Blobs: []string{ColGridConnection}}

// MemberSchema marks the JSON blob columns of member rows. Members have none.
var MemberSchema = marshal.Schema{}

// MemberStatus maps a node status reported by the grid onto the member
// status. Only WORKING and WARNING nodes are on.
func MemberStatus(nodeStatus string) string {
	switch nodeStatus {
	case NodeStatusWorking, NodeStatusWarning:
		return StatusOn
	}
	return StatusOff
}

// Grid is a configured Infoblox grid.
type Grid struct {
	ID         int       `json:"grid_id"`
	Name       string    `json:"grid_name"`
	Connection string    `json:"grid_connection"`
	Status     string    `json:"grid_status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Row returns the grid as a marshal row.
func (g *Grid) Row() marshal.Row {
	return marshal.Row{
		{Name: ColGridID, Value: g.ID},
		{Name: ColGridName, Value: g.Name},
		{Name: ColGridConnection, Value: g.Connection},
		{Name: ColGridStatus, Value: g.Status},
	}
}

// ConnectionView decodes the connection blob of the grid.
func (g *Grid) ConnectionView() (*marshal.View, error) {
	return marshal.NewView(map[string]interface{}{ColGridConnection: g.Connection}).BlobView(ColGridConnection)
}

// Copy returns a copy of the grid.
func (g *Grid) Copy() *Grid {
	c := *g
	return &c
}

// GridFromView builds a grid from a view of a grid row.
func GridFromView(v *marshal.View) (*Grid, error) {
	id, ok := v.Int(ColGridID)
	if !ok {
		return nil, errors.ErrInvalidArgument("grid row has no %s", ColGridID)
	}
	g := &Grid{ID: id}
	g.Name, _ = v.String(ColGridName)
	g.Status, _ = v.String(ColGridStatus)
	if conn, ok := v.String(ColGridConnection); ok {
		g.Connection = conn
	}
	g.Connection = marshal.NormalizeBlob(g.Connection)
	return g, nil
}

// Member is a member of a grid.
type Member struct {
	ID        string    `json:"member_id"`
	GridID    int       `json:"grid_id"`
	Name      string    `json:"member_name"`
	IPv4      string    `json:"member_ip"`
	IPv6      string    `json:"member_ipv6"`
	Type      string    `json:"member_type"`
	Status    string    `json:"member_status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Row returns the member as a marshal row.
func (m *Member) Row() marshal.Row {
	return marshal.Row{
		{Name: ColMemberID, Value: m.ID},
		{Name: ColGridID, Value: m.GridID},
		{Name: ColMemberName, Value: m.Name},
		{Name: ColMemberIPv4, Value: m.IPv4},
		{Name: ColMemberIPv6, Value: m.IPv6},
		{Name: ColMemberType, Value: m.Type},
		{Name: ColMemberStatus, Value: m.Status},
	}
}

// Copy returns a copy of the member.
func (m *Member) Copy() *Member {
	c := *m
	return &c
}

// IsGridMaster reports whether the member is the grid master.
func (m *Member) IsGridMaster() bool {
	return m.Type == MemberTypeGridMaster
}

// MemberFromView builds a member from a view of a member row.
func MemberFromView(v *marshal.View) (*Member, error) {
	id, ok := v.String(ColMemberID)
	if !ok || id == "" {
		return nil, errors.ErrInvalidArgument("member row has no %s", ColMemberID)
	}
	gridID, ok := v.Int(ColGridID)
	if !ok {
		return nil, errors.ErrInvalidArgument("member %s has no %s", id, ColGridID)
	}
	m := &Member{ID: id, GridID: gridID}
	m.Name, _ = v.String(ColMemberName)
	m.IPv4, _ = v.String(ColMemberIPv4)
	m.IPv6, _ = v.String(ColMemberIPv6)
	m.Type, _ = v.String(ColMemberType)
	m.Status, _ = v.String(ColMemberStatus)
	return m, nil
}

// Rows converts grids into rows.
func Rows(grids []*Grid) []marshal.Row {
	rows := make([]marshal.Row, len(grids))
	for i, g := range grids {
		rows[i] = g.Row()
	}
	return rows
}

// MemberRows converts members into rows.
func MemberRows(members []*Member) []marshal.Row {
	rows := make([]marshal.Row, len(members))
	for i, m := range members {
		rows[i] = m.Row()
	}
	return rows
}
