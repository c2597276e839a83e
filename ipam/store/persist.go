package store

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"code.cloudfoundry.org/clock"
	metrics "github.com/docker/go-metrics"
	pkgerrors "github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/openstack/networking-infoblox/ipam/errors"
	"github.com/openstack/networking-infoblox/ipam/grid"
	"github.com/openstack/networking-infoblox/log"
)

// Layout:
//
//  bucket(v1.grids) -> <grid id>: grid JSON
//  bucket(v1.members) -> <member id>: member JSON
var (
	bucketKeyStorageVersion = []byte("v1")
	bucketKeyGrids          = []byte("grids")
	bucketKeyMembers        = []byte("members")
)

var tableBuckets = map[string][]byte{
	tableGrid:   bucketKeyGrids,
	tableMember: bucketKeyMembers,
}

type bucketKeyPath [][]byte

func (bk bucketKeyPath) String() string {
	return string(bytes.Join([][]byte(bk), []byte("/")))
}

// Open opens the bolt database at path, creating it if needed, and returns
// a store loaded with its records. Updates to the store are written through
// to the database.
func Open(ctx context.Context, path string, clk clock.Clock) (*MemoryStore, error) {
	ctx = log.WithModule(ctx, "store")
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "opening store %s", path)
	}
	if err := initDB(db); err != nil {
		db.Close()
		return nil, err
	}

	s := NewMemoryStore(clk)
	if err := s.load(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	s.db = db
	log.G(ctx).WithField("path", path).Debug("store opened")
	return s, nil
}

func initDB(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, key := range tableBuckets {
			if _, err := createBucketIfNotExists(tx, bucketKeyStorageVersion, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// load reads every record of db into the store. Grids are inserted before
// members so that member checks see their grid.
func (s *MemoryStore) load(ctx context.Context, db *bolt.DB) error {
	var (
		grids   []*grid.Grid
		members []*grid.Member
	)
	if err := db.View(func(tx *bolt.Tx) error {
		if err := forEach(tx, bucketKeyGrids, func(p []byte) error {
			var g grid.Grid
			if err := json.Unmarshal(p, &g); err != nil {
				return err
			}
			grids = append(grids, &g)
			return nil
		}); err != nil {
			return err
		}
		return forEach(tx, bucketKeyMembers, func(p []byte) error {
			var m grid.Member
			if err := json.Unmarshal(p, &m); err != nil {
				return err
			}
			members = append(members, &m)
			return nil
		})
	}); err != nil {
		return pkgerrors.Wrap(errors.ErrBadState("corrupt store: %v", err), "loading store")
	}

	memDBTx := s.memDB.Txn(true)
	for _, g := range grids {
		if err := memDBTx.Insert(tableGrid, g); err != nil {
			memDBTx.Abort()
			return err
		}
	}
	for _, m := range members {
		if err := memDBTx.Insert(tableMember, m); err != nil {
			memDBTx.Abort()
			return err
		}
	}
	memDBTx.Commit()

	log.G(ctx).Debugf("loaded %d grids and %d members", len(grids), len(members))
	return nil
}

// persist writes changes to the backing database in a single transaction.
func (s *MemoryStore) persist(changes []change) error {
	defer metrics.StartTimer(persistLatency)()

	err := s.db.Update(func(tx *bolt.Tx) error {
		for _, c := range changes {
			bkt, err := createBucketIfNotExists(tx, bucketKeyStorageVersion, tableBuckets[c.table])
			if err != nil {
				return err
			}
			if c.obj == nil {
				if err := bkt.Delete([]byte(c.key)); err != nil {
					return err
				}
				continue
			}
			p, err := json.Marshal(c.obj)
			if err != nil {
				return err
			}
			if err := bkt.Put([]byte(c.key), p); err != nil {
				return err
			}
		}
		return nil
	})
	return pkgerrors.Wrap(err, "persisting store changes")
}

func forEach(tx *bolt.Tx, key []byte, fn func(p []byte) error) error {
	bkt := getBucket(tx, bucketKeyStorageVersion, key)
	if bkt == nil {
		return nil
	}
	return bkt.ForEach(func(k, v []byte) error {
		if v == nil {
			return nil
		}
		return fn(v)
	})
}

func createBucketIfNotExists(tx *bolt.Tx, keys ...[]byte) (*bolt.Bucket, error) {
	bkt, err := tx.CreateBucketIfNotExists(keys[0])
	if err != nil {
		return nil, err
	}

	for _, key := range keys[1:] {
		bkt, err = bkt.CreateBucketIfNotExists(key)
		if err != nil {
			return nil, err
		}
	}

	return bkt, nil
}

func getBucket(tx *bolt.Tx, keys ...[]byte) *bolt.Bucket {
	bkt := tx.Bucket(keys[0])

	for _, key := range keys[1:] {
		if bkt == nil {
			log.L.Debugf("getBucket %v, missing at %v", bucketKeyPath(keys), string(key))
			break
		}
		bkt = bkt.Bucket(key)
	}

	return bkt
}
