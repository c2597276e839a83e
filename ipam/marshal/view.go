package marshal

import (
	"encoding/json"
	"math"
	"sort"

	pkgerrors "github.com/pkg/errors"

	"github.com/openstack/networking-infoblox/ipam/errors"
)

// View gives typed, read-only access to a decoded JSON object. Nested
// objects are returned as views as well.
type View struct {
	data map[string]interface{}
}

// NewView wraps m. A nil map yields an empty view. The view keeps a
// reference to m; callers must not modify it afterwards.
func NewView(m map[string]interface{}) *View {
	if m == nil {
		m = map[string]interface{}{}
	}
	return &View{data: m}
}

// ParseView decodes a JSON object into a view. An empty input is the empty
// object.
func ParseView(p []byte) (*View, error) {
	v, err := DecodeBlob(string(p))
	if err != nil {
		return nil, err
	}
	view, ok := v.(*View)
	if !ok {
		return nil, errors.ErrInvalidArgument("JSON value is not an object")
	}
	return view, nil
}

// DecodeBlob decodes a blob column. Objects become views, other JSON values
// are returned as decoded. Absent blobs decode to an empty view.
func DecodeBlob(blob string) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(NormalizeBlob(blob)), &v); err != nil {
		return nil, pkgerrors.Wrap(errors.ErrBadState("blob is not valid JSON: %v", err), "decoding blob")
	}
	return wrap(v), nil
}

func wrap(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return NewView(m)
	}
	return v
}

// Get returns the raw value of key. Nested objects are returned as views.
func (v *View) Get(key string) (interface{}, bool) {
	raw, ok := v.data[key]
	if !ok {
		return nil, false
	}
	return wrap(raw), true
}

// String returns the value of key if it is a string.
func (v *View) String(key string) (string, bool) {
	s, ok := v.data[key].(string)
	return s, ok
}

// Int returns the value of key if it is an integral number.
func (v *View) Int(key string) (int, bool) {
	switch n := v.data[key].(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// Bool returns the value of key if it is a boolean.
func (v *View) Bool(key string) (bool, bool) {
	b, ok := v.data[key].(bool)
	return b, ok
}

// View returns the nested object under key.
func (v *View) View(key string) (*View, bool) {
	switch m := v.data[key].(type) {
	case map[string]interface{}:
		return NewView(m), true
	case *View:
		return m, true
	}
	return nil, false
}

// List returns the list under key.
func (v *View) List(key string) ([]interface{}, bool) {
	l, ok := v.data[key].([]interface{})
	return l, ok
}

// Blob decodes the JSON blob stored as a string under key. A missing key
// decodes like an empty blob.
func (v *View) Blob(key string) (interface{}, error) {
	raw, ok := v.data[key]
	if !ok {
		return NewView(nil), nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, errors.ErrInvalidArgument("field %q is not a JSON blob", key)
	}
	return DecodeBlob(s)
}

// BlobView decodes the blob under key and requires it to be an object.
func (v *View) BlobView(key string) (*View, error) {
	b, err := v.Blob(key)
	if err != nil {
		return nil, err
	}
	view, ok := b.(*View)
	if !ok {
		return nil, errors.ErrBadState("blob %q is not a JSON object", key)
	}
	return view, nil
}

// Keys returns the keys of the view in sorted order.
func (v *View) Keys() []string {
	keys := make([]string, 0, len(v.data))
	for k := range v.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (v *View) Len() int {
	return len(v.data)
}

// Map returns a shallow copy of the underlying map.
func (v *View) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(v.data))
	for k, val := range v.data {
		m[k] = val
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (v *View) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.data)
}
