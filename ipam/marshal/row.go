// Package marshal converts persisted rows into JSON payloads and into views,
// read-only wrappers that give typed access to decoded objects.
//
// Rows may hold JSON blob columns, such as the connection settings of a
// grid. Blobs stay opaque strings in the JSON form of a row; an absent or
// empty blob is always rendered as "{}" so readers never need a nil check.
package marshal

import (
	"github.com/openstack/networking-infoblox/ipam/query"
)

// EmptyBlob is the normalised form of a missing JSON blob.
const EmptyBlob = "{}"

// Field is a single named column value of a row.
type Field struct {
	Name  string
	Value interface{}
}

// Row is an ordered list of fields, as read from a table.
type Row []Field

// Get returns the value of the named field.
func (r Row) Get(name string) (interface{}, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in row order.
func (r Row) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Schema describes the columns of a table that hold JSON blobs.
type Schema struct {
	Blobs []string
}

func (s Schema) isBlob(name string) bool {
	for _, b := range s.Blobs {
		if b == name {
			return true
		}
	}
	return false
}

// NormalizeBlob returns the string form of a blob column value. Nil, empty
// strings and empty byte slices become EmptyBlob.
func NormalizeBlob(v interface{}) string {
	switch b := v.(type) {
	case nil:
		return EmptyBlob
	case string:
		if b == "" {
			return EmptyBlob
		}
		return b
	case []byte:
		if len(b) == 0 {
			return EmptyBlob
		}
		return string(b)
	}
	return EmptyBlob
}

// Record returns the row as a record map with blob columns normalised.
func (s Schema) Record(r Row) query.Record {
	rec := make(query.Record, len(r))
	for _, f := range r {
		if s.isBlob(f.Name) {
			rec[f.Name] = NormalizeBlob(f.Value)
			continue
		}
		rec[f.Name] = f.Value
	}
	return rec
}

// ToJSON converts rows into JSON-serialisable maps, one per row.
func ToJSON(rows []Row, schema Schema) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, map[string]interface{}(schema.Record(r)))
	}
	return out
}

// ToRecords converts rows into records for the query package.
func ToRecords(rows []Row, schema Schema) []query.Record {
	out := make([]query.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, schema.Record(r))
	}
	return out
}

// ToViews converts rows into views. Blob columns stay strings on the view;
// use View.Blob to decode them.
func ToViews(rows []Row, schema Schema) []*View {
	out := make([]*View, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewView(schema.Record(r)))
	}
	return out
}
