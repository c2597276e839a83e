// Package store keeps the grid and member records of every configured grid
// in an indexed in-memory database, optionally persisted to a bolt file.
package store

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	metrics "github.com/docker/go-metrics"
	memdb "github.com/hashicorp/go-memdb"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	"github.com/openstack/networking-infoblox/ipam/grid"
	"github.com/openstack/networking-infoblox/log"
)

// ReadTx is a read-only view of the store.
type ReadTx interface {
	// GetGrid returns the grid with the given id, or nil.
	GetGrid(id int) *grid.Grid
	// GetGridByName returns the grid with the given name, or nil.
	GetGridByName(name string) *grid.Grid
	// FindGrids returns all grids ordered by id.
	FindGrids() ([]*grid.Grid, error)
	// GetMember returns the member with the given id, or nil.
	GetMember(id string) *grid.Member
	// GetMemberByName returns the member of a grid with the given name, or nil.
	GetMemberByName(gridID int, name string) *grid.Member
	// FindMembers returns the members of a grid.
	FindMembers(gridID int) ([]*grid.Member, error)
}

// Tx is a read/write transaction.
type Tx interface {
	ReadTx

	CreateGrid(g *grid.Grid) error
	UpdateGrid(g *grid.Grid) error
	// DeleteGrid removes a grid together with its members.
	DeleteGrid(id int) error

	CreateMember(m *grid.Member) error
	UpdateMember(m *grid.Member) error
	DeleteMember(id string) error
}

// MemoryStore is a concurrency-safe store of grid records. Readers see
// consistent snapshots; writers are serialised.
type MemoryStore struct {
	// updateLock must be held during an update transaction.
	updateLock sync.Mutex

	memDB *memdb.MemDB
	clock clock.Clock
	db    *bolt.DB
}

// NewMemoryStore returns an empty store that is not persisted. Update
// timestamps come from clk.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		// This shouldn't fail
		panic(err)
	}
	if clk == nil {
		clk = clock.NewClock()
	}
	return &MemoryStore{
		memDB: memDB,
		clock: clk,
	}
}

// View executes a read transaction.
func (s *MemoryStore) View(cb func(ReadTx) error) error {
	defer metrics.StartTimer(viewLatency)()

	memDBTx := s.memDB.Txn(false)
	err := cb(readTx{memDBTx: memDBTx})
	memDBTx.Commit()
	return err
}

// Update executes a read/write transaction. The changes are committed only
// if cb returns nil and, for a persisted store, the changes were written to
// disk.
func (s *MemoryStore) Update(ctx context.Context, cb func(Tx) error) error {
	defer metrics.StartTimer(updateLatency)()

	s.updateLock.Lock()
	defer s.updateLock.Unlock()

	memDBTx := s.memDB.Txn(true)
	t := &tx{
		readTx: readTx{memDBTx: memDBTx},
		now:    s.clock.Now(),
	}

	if err := cb(t); err != nil {
		memDBTx.Abort()
		return err
	}
	if s.db != nil && len(t.changes) > 0 {
		if err := s.persist(t.changes); err != nil {
			memDBTx.Abort()
			return err
		}
	}
	memDBTx.Commit()

	log.G(ctx).WithFields(logrus.Fields{
		"changes":   len(t.changes),
		"persisted": s.db != nil,
	}).Debug("store updated")
	return nil
}

// Now returns the current time of the store clock.
func (s *MemoryStore) Now() time.Time {
	return s.clock.Now()
}

// Close closes the backing bolt database, if any.
func (s *MemoryStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

type readTx struct {
	memDBTx *memdb.Txn
}

// change is a pending write to persistent storage. A nil obj is a delete.
type change struct {
	table string
	key   string
	obj   interface{}
}

type tx struct {
	readTx
	now     time.Time
	changes []change
}

func get(memDBTx *memdb.Txn, table, index string, args ...interface{}) interface{} {
	obj, err := memDBTx.First(table, index, args...)
	if err != nil {
		return nil
	}
	return obj
}

func find(memDBTx *memdb.Txn, table, index string, args []interface{}, cb func(interface{})) error {
	it, err := memDBTx.Get(table, index, args...)
	if err != nil {
		return err
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		cb(obj)
	}
	return nil
}
