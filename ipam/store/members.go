package store

import (
	"sort"
	"strconv"

	"github.com/openstack/networking-infoblox/ipam/errors"
	"github.com/openstack/networking-infoblox/ipam/grid"
)

const objectMember = "member"

func (t readTx) GetMember(id string) *grid.Member {
	m := get(t.memDBTx, tableMember, indexID, id)
	if m == nil {
		return nil
	}
	return m.(*grid.Member).Copy()
}

func (t readTx) GetMemberByName(gridID int, name string) *grid.Member {
	if name == "" {
		return nil
	}
	m := get(t.memDBTx, tableMember, indexGridName, gridID, name)
	if m == nil {
		return nil
	}
	return m.(*grid.Member).Copy()
}

func (t readTx) FindMembers(gridID int) ([]*grid.Member, error) {
	members := []*grid.Member{}
	err := find(t.memDBTx, tableMember, indexGridID, []interface{}{gridID}, func(o interface{}) {
		members = append(members, o.(*grid.Member).Copy())
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members, nil
}

// CreateMember adds a member to an existing grid. The id must not be in
// use and the name must be unique within the grid.
func (t *tx) CreateMember(m *grid.Member) error {
	if m.ID == "" {
		return errors.ErrInvalidArgument("member id is required")
	}
	if t.GetGrid(m.GridID) == nil {
		return errors.ErrNotFound(objectGrid, strconv.Itoa(m.GridID))
	}
	if t.GetMember(m.ID) != nil {
		return errors.ErrAlreadyExists(objectMember, m.ID)
	}
	if t.GetMemberByName(m.GridID, m.Name) != nil {
		return errors.ErrAlreadyExists(objectMember, m.Name)
	}
	return t.putMember(m)
}

// UpdateMember replaces an existing member.
func (t *tx) UpdateMember(m *grid.Member) error {
	existing := t.GetMember(m.ID)
	if existing == nil {
		return errors.ErrNotFound(objectMember, m.ID)
	}
	if existing.GridID != m.GridID {
		return errors.ErrInvalidArgument("member %s cannot move from grid %d to %d", m.ID, existing.GridID, m.GridID)
	}
	if other := t.GetMemberByName(m.GridID, m.Name); other != nil && other.ID != m.ID {
		return errors.ErrAlreadyExists(objectMember, m.Name)
	}
	return t.putMember(m)
}

func (t *tx) putMember(m *grid.Member) error {
	m.UpdatedAt = t.now
	stored := m.Copy()
	if err := t.memDBTx.Insert(tableMember, stored); err != nil {
		return err
	}
	t.changes = append(t.changes, change{table: tableMember, key: m.ID, obj: stored})
	return nil
}

func (t *tx) DeleteMember(id string) error {
	m := get(t.memDBTx, tableMember, indexID, id)
	if m == nil {
		return errors.ErrNotFound(objectMember, id)
	}
	if err := t.memDBTx.Delete(tableMember, m); err != nil {
		return err
	}
	t.changes = append(t.changes, change{table: tableMember, key: id})
	return nil
}
