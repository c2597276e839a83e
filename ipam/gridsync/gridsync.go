// Package gridsync brings the grid and member records of a store in line
// with the configured data centers.
package gridsync

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/openstack/networking-infoblox/config"
	"github.com/openstack/networking-infoblox/identity"
	"github.com/openstack/networking-infoblox/ipam/grid"
	"github.com/openstack/networking-infoblox/ipam/store"
	"github.com/openstack/networking-infoblox/log"
	"github.com/openstack/networking-infoblox/xnet"
)

// Options control a sync run.
type Options struct {
	// MinWait skips grids synced less than MinWait ago.
	MinWait time.Duration
	// Force syncs every grid regardless of MinWait.
	Force bool
}

// Result counts the changes made by a sync run.
type Result struct {
	GridsAdded     int
	GridsUpdated   int
	GridsRemoved   int
	MembersAdded   int
	MembersUpdated int
	MembersRemoved int
	// Skipped lists the ids of grids left alone because of MinWait.
	Skipped []int
}

// MemberID returns the stable id of the member name in a grid.
func MemberID(gridID int, name string) string {
	id, _ := identity.Hash(fmt.Sprintf("%d:%s", gridID, name))
	return id
}

// Sync updates s from c in a single transaction. Grids that are no longer
// configured are removed with their members.
func Sync(ctx context.Context, s *store.MemoryStore, c *config.Config, opts Options) (*Result, error) {
	ctx = log.WithModule(ctx, "gridsync")
	res := &Result{Skipped: []int{}}
	now := s.Now()

	err := s.Update(ctx, func(tx store.Tx) error {
		configured := make(map[int]struct{}, len(c.DataCenters))
		for i := range c.DataCenters {
			dc := &c.DataCenters[i]
			configured[dc.ID] = struct{}{}

			existing := tx.GetGrid(dc.ID)
			if existing != nil && !opts.Force && now.Sub(existing.UpdatedAt) < opts.MinWait {
				log.G(ctx).WithField("grid.id", dc.ID).Debug("grid synced recently, skipping")
				res.Skipped = append(res.Skipped, dc.ID)
				continue
			}
			if err := syncGrid(ctx, tx, c, dc, existing, res); err != nil {
				return err
			}
		}

		grids, err := tx.FindGrids()
		if err != nil {
			return err
		}
		for _, g := range grids {
			if _, ok := configured[g.ID]; ok {
				continue
			}
			members, err := tx.FindMembers(g.ID)
			if err != nil {
				return err
			}
			if err := tx.DeleteGrid(g.ID); err != nil {
				return err
			}
			res.GridsRemoved++
			res.MembersRemoved += len(members)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.G(ctx).WithFields(logrus.Fields{
		"grids.added":     res.GridsAdded,
		"grids.updated":   res.GridsUpdated,
		"grids.removed":   res.GridsRemoved,
		"members.added":   res.MembersAdded,
		"members.updated": res.MembersUpdated,
		"members.removed": res.MembersRemoved,
	}).Info("grid sync finished")
	return res, nil
}

func syncGrid(ctx context.Context, tx store.Tx, c *config.Config, dc *config.DataCenter, existing *grid.Grid, res *Result) error {
	conn, err := dc.ConnectionJSON()
	if err != nil {
		return err
	}
	g := &grid.Grid{
		ID:         dc.ID,
		Name:       dc.GridMasterName,
		Connection: conn,
		Status:     grid.StatusOff,
	}
	if dc.ID == c.CloudDataCenterID {
		g.Status = grid.StatusOn
	}

	switch {
	case existing == nil:
		if err := tx.CreateGrid(g); err != nil {
			return err
		}
		res.GridsAdded++
	default:
		if existing.Name != g.Name || existing.Connection != g.Connection || existing.Status != g.Status {
			res.GridsUpdated++
		}
		if err := tx.UpdateGrid(g); err != nil {
			return err
		}
	}

	desired := desiredMembers(ctx, dc)
	current, err := tx.FindMembers(dc.ID)
	if err != nil {
		return err
	}
	for _, m := range current {
		if _, ok := desired[m.ID]; ok {
			continue
		}
		if err := tx.DeleteMember(m.ID); err != nil {
			return err
		}
		res.MembersRemoved++
	}
	for _, m := range orderedMembers(dc, desired) {
		old := tx.GetMember(m.ID)
		if old == nil {
			if err := tx.CreateMember(m); err != nil {
				return err
			}
			res.MembersAdded++
			continue
		}
		if old.Name != m.Name || old.IPv4 != m.IPv4 || old.IPv6 != m.IPv6 ||
			old.Type != m.Type || old.Status != m.Status {
			res.MembersUpdated++
		}
		if err := tx.UpdateMember(m); err != nil {
			return err
		}
	}
	return nil
}

// desiredMembers returns the members configured for dc keyed by id: the
// grid master followed by the listed members.
func desiredMembers(ctx context.Context, dc *config.DataCenter) map[string]*grid.Member {
	members := make(map[string]*grid.Member, len(dc.Members)+1)

	gm := &grid.Member{
		ID:     MemberID(dc.ID, dc.GridMasterName),
		GridID: dc.ID,
		Name:   dc.GridMasterName,
		Type:   grid.MemberTypeGridMaster,
		Status: grid.StatusOn,
	}
	setAddress(ctx, gm, dc.GridMasterHost)
	members[gm.ID] = gm

	for _, cm := range dc.Members {
		m := &grid.Member{
			ID:     MemberID(dc.ID, cm.Name),
			GridID: dc.ID,
			Name:   cm.Name,
			IPv4:   cm.IPv4,
			IPv6:   cm.IPv6,
			Type:   cm.Type,
			Status: grid.MemberStatus(cm.NodeStatus),
		}
		members[m.ID] = m
	}
	return members
}

func orderedMembers(dc *config.DataCenter, desired map[string]*grid.Member) []*grid.Member {
	ordered := make([]*grid.Member, 0, len(desired))
	seen := make(map[string]struct{}, len(desired))
	names := append([]string{dc.GridMasterName}, memberNames(dc)...)
	for _, name := range names {
		id := MemberID(dc.ID, name)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if m, ok := desired[id]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

func memberNames(dc *config.DataCenter) []string {
	names := make([]string, len(dc.Members))
	for i, m := range dc.Members {
		names[i] = m.Name
	}
	return names
}

// setAddress records host as the member address when it is an IP address.
// Host names are left to DNS.
func setAddress(ctx context.Context, m *grid.Member, host string) {
	v, err := xnet.IPVersion(host)
	if err != nil {
		log.G(ctx).WithField("host", host).Debug("grid master host is not an address")
		return
	}
	if v == 4 {
		m.IPv4 = host
		return
	}
	m.IPv6 = host
}
