package store

import (
	"context"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack/networking-infoblox/ipam/errors"
	"github.com/openstack/networking-infoblox/ipam/grid"
)

var epoch = time.Date(2016, 1, 2, 3, 4, 5, 0, time.UTC)

func testGrid(id int, name string) *grid.Grid {
	return &grid.Grid{ID: id, Name: name, Connection: "{}", Status: grid.StatusOn}
}

func testMember(id string, gridID int, name string) *grid.Member {
	return &grid.Member{ID: id, GridID: gridID, Name: name, Type: grid.MemberTypeRegular, Status: grid.StatusOn}
}

func populate(t *testing.T, s *MemoryStore) {
	require.NoError(t, s.Update(context.Background(), func(tx Tx) error {
		for _, g := range []*grid.Grid{testGrid(10, "grid-10"), testGrid(2, "grid-2")} {
			if err := tx.CreateGrid(g); err != nil {
				return err
			}
		}
		for _, m := range []*grid.Member{
			testMember("m1", 2, "gm"),
			testMember("m2", 2, "cpm"),
			testMember("m3", 10, "gm"),
		} {
			if err := tx.CreateMember(m); err != nil {
				return err
			}
		}
		return nil
	}))
}

func TestStoreCreateGet(t *testing.T) {
	clk := fakeclock.NewFakeClock(epoch)
	s := NewMemoryStore(clk)
	populate(t, s)

	require.NoError(t, s.View(func(tx ReadTx) error {
		g := tx.GetGrid(2)
		require.NotNil(t, g)
		assert.Equal(t, "grid-2", g.Name)
		assert.True(t, epoch.Equal(g.UpdatedAt))

		assert.Equal(t, 10, tx.GetGridByName("grid-10").ID)
		assert.Nil(t, tx.GetGrid(3))
		assert.Nil(t, tx.GetGridByName(""))

		grids, err := tx.FindGrids()
		require.NoError(t, err)
		require.Len(t, grids, 2)
		assert.Equal(t, 2, grids[0].ID)
		assert.Equal(t, 10, grids[1].ID)

		members, err := tx.FindMembers(2)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "cpm", members[0].Name)
		assert.Equal(t, "gm", members[1].Name)

		assert.Equal(t, "m3", tx.GetMemberByName(10, "gm").ID)
		assert.Equal(t, "m1", tx.GetMemberByName(2, "gm").ID)
		assert.Nil(t, tx.GetMemberByName(3, "gm"))
		assert.Nil(t, tx.GetMember("m9"))

		members, err = tx.FindMembers(99)
		require.NoError(t, err)
		assert.Empty(t, members)
		return nil
	}))
}

func TestStoreConflicts(t *testing.T) {
	s := NewMemoryStore(fakeclock.NewFakeClock(epoch))
	populate(t, s)
	ctx := context.Background()

	err := s.Update(ctx, func(tx Tx) error { return tx.CreateGrid(testGrid(2, "other")) })
	assert.True(t, errors.IsErrAlreadyExists(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.CreateGrid(testGrid(3, "grid-2")) })
	assert.True(t, errors.IsErrAlreadyExists(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.UpdateGrid(testGrid(3, "grid-3")) })
	assert.True(t, errors.IsErrNotFound(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.UpdateGrid(testGrid(2, "grid-10")) })
	assert.True(t, errors.IsErrAlreadyExists(err))

	err = s.Update(ctx, func(tx Tx) error { return tx.CreateMember(testMember("m4", 7, "x")) })
	assert.True(t, errors.IsErrNotFound(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.CreateMember(testMember("m1", 2, "x")) })
	assert.True(t, errors.IsErrAlreadyExists(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.CreateMember(testMember("m4", 2, "gm")) })
	assert.True(t, errors.IsErrAlreadyExists(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.CreateMember(testMember("", 2, "y")) })
	assert.True(t, errors.IsErrInvalidArgument(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.UpdateMember(testMember("m1", 10, "gm")) })
	assert.True(t, errors.IsErrInvalidArgument(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.UpdateMember(testMember("m2", 2, "gm")) })
	assert.True(t, errors.IsErrAlreadyExists(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.DeleteMember("m9") })
	assert.True(t, errors.IsErrNotFound(err))
	err = s.Update(ctx, func(tx Tx) error { return tx.DeleteGrid(9) })
	assert.True(t, errors.IsErrNotFound(err))
}

func TestStoreUpdateAbort(t *testing.T) {
	s := NewMemoryStore(fakeclock.NewFakeClock(epoch))
	populate(t, s)

	err := s.Update(context.Background(), func(tx Tx) error {
		if err := tx.CreateGrid(testGrid(3, "grid-3")); err != nil {
			return err
		}
		return errors.ErrBadState("rollback")
	})
	assert.True(t, errors.IsErrBadState(err))

	require.NoError(t, s.View(func(tx ReadTx) error {
		assert.Nil(t, tx.GetGrid(3))
		return nil
	}))
}

func TestStoreUpdateAndDelete(t *testing.T) {
	clk := fakeclock.NewFakeClock(epoch)
	s := NewMemoryStore(clk)
	populate(t, s)
	ctx := context.Background()

	clk.Increment(time.Hour)
	require.NoError(t, s.Update(ctx, func(tx Tx) error {
		g := tx.GetGrid(2)
		g.Name = "renamed"
		g.Status = grid.StatusOff
		if err := tx.UpdateGrid(g); err != nil {
			return err
		}
		m := tx.GetMember("m2")
		m.Status = grid.StatusOff
		return tx.UpdateMember(m)
	}))

	require.NoError(t, s.View(func(tx ReadTx) error {
		g := tx.GetGridByName("renamed")
		require.NotNil(t, g)
		assert.Equal(t, grid.StatusOff, g.Status)
		assert.True(t, epoch.Add(time.Hour).Equal(g.UpdatedAt))
		assert.Nil(t, tx.GetGridByName("grid-2"))
		assert.Equal(t, grid.StatusOff, tx.GetMember("m2").Status)
		return nil
	}))

	require.NoError(t, s.Update(ctx, func(tx Tx) error { return tx.DeleteGrid(2) }))
	require.NoError(t, s.View(func(tx ReadTx) error {
		assert.Nil(t, tx.GetGrid(2))
		assert.Nil(t, tx.GetMember("m1"))
		assert.Nil(t, tx.GetMember("m2"))
		assert.NotNil(t, tx.GetMember("m3"))
		return nil
	}))
}

func TestStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore(nil)
	populate(t, s)

	require.NoError(t, s.View(func(tx ReadTx) error {
		tx.GetGrid(2).Name = "mutated"
		assert.Equal(t, "grid-2", tx.GetGrid(2).Name)
		return nil
	}))
}
