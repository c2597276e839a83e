package store

import (
	"fmt"
	"strconv"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/openstack/networking-infoblox/ipam/grid"
)

const (
	tableGrid   = "grid"
	tableMember = "member"

	indexID       = "id"
	indexName     = "name"
	indexGridID   = "gridid"
	indexGridName = "gridname"

	prefix = "_prefix"
)

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableGrid: {
			Name: tableGrid,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {
					Name:    indexID,
					Unique:  true,
					Indexer: gridIndexerByID{},
				},
				indexName: {
					Name:         indexName,
					Unique:       true,
					AllowMissing: true,
					Indexer:      gridIndexerByName{},
				},
			},
		},
		tableMember: {
			Name: tableMember,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {
					Name:    indexID,
					Unique:  true,
					Indexer: memberIndexerByID{},
				},
				indexGridID: {
					Name:    indexGridID,
					Indexer: memberIndexerByGridID{},
				},
				indexGridName: {
					Name:         indexGridName,
					Unique:       true,
					AllowMissing: true,
					Indexer:      memberIndexerByGridName{},
				},
			},
		},
	},
}

// keyPart renders a single index argument, terminated by a null byte.
func keyPart(arg interface{}) (string, error) {
	switch v := arg.(type) {
	case string:
		return v + "\x00", nil
	case int:
		return strconv.Itoa(v) + "\x00", nil
	}
	return "", fmt.Errorf("argument must be a string or an int: %#v", arg)
}

func fromArgs(args ...interface{}) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("must provide only a single argument")
	}
	k, err := keyPart(args[0])
	if err != nil {
		return nil, err
	}
	return []byte(k), nil
}

func prefixFromArgs(args ...interface{}) ([]byte, error) {
	val, err := fromArgs(args...)
	if err != nil {
		return nil, err
	}

	// Strip the null terminator, the rest is a prefix
	n := len(val)
	if n > 0 {
		return val[:n-1], nil
	}
	return val, nil
}

type gridIndexerByID struct{}

func (gridIndexerByID) FromArgs(args ...interface{}) ([]byte, error) {
	return fromArgs(args...)
}

func (gridIndexerByID) FromObject(obj interface{}) (bool, []byte, error) {
	g, ok := obj.(*grid.Grid)
	if !ok {
		panic("unexpected type passed to FromObject")
	}
	return true, []byte(strconv.Itoa(g.ID) + "\x00"), nil
}

func (gridIndexerByID) PrefixFromArgs(args ...interface{}) ([]byte, error) {
	return prefixFromArgs(args...)
}

type gridIndexerByName struct{}

func (gridIndexerByName) FromArgs(args ...interface{}) ([]byte, error) {
	return fromArgs(args...)
}

func (gridIndexerByName) FromObject(obj interface{}) (bool, []byte, error) {
	g, ok := obj.(*grid.Grid)
	if !ok {
		panic("unexpected type passed to FromObject")
	}
	if g.Name == "" {
		return false, nil, nil
	}
	return true, []byte(g.Name + "\x00"), nil
}

type memberIndexerByID struct{}

func (memberIndexerByID) FromArgs(args ...interface{}) ([]byte, error) {
	return fromArgs(args...)
}

func (memberIndexerByID) FromObject(obj interface{}) (bool, []byte, error) {
	m, ok := obj.(*grid.Member)
	if !ok {
		panic("unexpected type passed to FromObject")
	}
	return true, []byte(m.ID + "\x00"), nil
}

func (memberIndexerByID) PrefixFromArgs(args ...interface{}) ([]byte, error) {
	return prefixFromArgs(args...)
}

type memberIndexerByGridID struct{}

func (memberIndexerByGridID) FromArgs(args ...interface{}) ([]byte, error) {
	return fromArgs(args...)
}

func (memberIndexerByGridID) FromObject(obj interface{}) (bool, []byte, error) {
	m, ok := obj.(*grid.Member)
	if !ok {
		panic("unexpected type passed to FromObject")
	}
	return true, []byte(strconv.Itoa(m.GridID) + "\x00"), nil
}

// memberIndexerByGridName indexes members by grid id and member name.
type memberIndexerByGridName struct{}

func (memberIndexerByGridName) FromArgs(args ...interface{}) ([]byte, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("must provide a grid id and a member name")
	}
	gridID, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("grid id must be an int: %#v", args[0])
	}
	name, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("member name must be a string: %#v", args[1])
	}
	return []byte(strconv.Itoa(gridID) + "\x00" + name + "\x00"), nil
}

func (memberIndexerByGridName) FromObject(obj interface{}) (bool, []byte, error) {
	m, ok := obj.(*grid.Member)
	if !ok {
		panic("unexpected type passed to FromObject")
	}
	if m.Name == "" {
		return false, nil, nil
	}
	return true, []byte(strconv.Itoa(m.GridID) + "\x00" + m.Name + "\x00"), nil
}
