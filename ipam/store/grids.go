package store

import (
	"sort"
	"strconv"

	"github.com/openstack/networking-infoblox/ipam/errors"
	"github.com/openstack/networking-infoblox/ipam/grid"
)

const objectGrid = "grid"

func (t readTx) GetGrid(id int) *grid.Grid {
	g := get(t.memDBTx, tableGrid, indexID, id)
	if g == nil {
		return nil
	}
	return g.(*grid.Grid).Copy()
}

func (t readTx) GetGridByName(name string) *grid.Grid {
	if name == "" {
		return nil
	}
	g := get(t.memDBTx, tableGrid, indexName, name)
	if g == nil {
		return nil
	}
	return g.(*grid.Grid).Copy()
}

func (t readTx) FindGrids() ([]*grid.Grid, error) {
	grids := []*grid.Grid{}
	err := find(t.memDBTx, tableGrid, indexID+prefix, []interface{}{""}, func(o interface{}) {
		grids = append(grids, o.(*grid.Grid).Copy())
	})
	if err != nil {
		return nil, err
	}
	// the id index orders ids as strings
	sort.Slice(grids, func(i, j int) bool { return grids[i].ID < grids[j].ID })
	return grids, nil
}

// CreateGrid adds a new grid. The id and the name must not be in use.
func (t *tx) CreateGrid(g *grid.Grid) error {
	if t.GetGrid(g.ID) != nil {
		return errors.ErrAlreadyExists(objectGrid, strconv.Itoa(g.ID))
	}
	if g.Name != "" && t.GetGridByName(g.Name) != nil {
		return errors.ErrAlreadyExists(objectGrid, g.Name)
	}
	return t.putGrid(g)
}

// UpdateGrid replaces an existing grid. The name must not be used by
// another grid.
func (t *tx) UpdateGrid(g *grid.Grid) error {
	if t.GetGrid(g.ID) == nil {
		return errors.ErrNotFound(objectGrid, strconv.Itoa(g.ID))
	}
	if existing := t.GetGridByName(g.Name); existing != nil && existing.ID != g.ID {
		return errors.ErrAlreadyExists(objectGrid, g.Name)
	}
	return t.putGrid(g)
}

func (t *tx) putGrid(g *grid.Grid) error {
	g.UpdatedAt = t.now
	stored := g.Copy()
	if err := t.memDBTx.Insert(tableGrid, stored); err != nil {
		return err
	}
	t.changes = append(t.changes, change{table: tableGrid, key: strconv.Itoa(g.ID), obj: stored})
	return nil
}

func (t *tx) DeleteGrid(id int) error {
	g := get(t.memDBTx, tableGrid, indexID, id)
	if g == nil {
		return errors.ErrNotFound(objectGrid, strconv.Itoa(id))
	}
	members, err := t.FindMembers(id)
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := t.DeleteMember(m.ID); err != nil {
			return err
		}
	}
	if err := t.memDBTx.Delete(tableGrid, g); err != nil {
		return err
	}
	t.changes = append(t.changes, change{table: tableGrid, key: strconv.Itoa(id)})
	return nil
}
