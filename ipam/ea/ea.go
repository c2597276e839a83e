// Package ea builds and reads extensible attribute sets, the key/value tags
// the grid stores on its objects. The attribute set is the only place where
// OpenStack identity survives a round trip through the grid, so every object
// created here is tagged, and every read tolerates objects that were tagged
// partially or by an older release.
package ea

import (
	"github.com/sirupsen/logrus"

	"github.com/openstack/networking-infoblox/log"
)

// ExtAttrsKey is the key under which a grid object carries its attributes.
const ExtAttrsKey = "extattrs"

// Value is a single attribute value as the grid expects it on the wire. The
// inner value is a string or a list of strings.
type Value struct {
	Value interface{} `json:"value"`
}

// Set maps attribute names to values.
type Set map[string]Value

// Build tags every value in attrs and always adds the cloud platform
// attribute, replacing any value the caller supplied under that name.
func Build(attrs map[string]interface{}) Set {
	set := make(Set, len(attrs)+1)
	for name, v := range attrs {
		set[name] = Value{Value: v}
	}
	set[CloudPlatformType] = Value{Value: CloudPlatformTypeValue}
	return set
}

// Map returns the set in the generic shape produced by decoding a grid
// response, so it can be wrapped as an object and read with Get.
func (s Set) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(s))
	for name, v := range s {
		m[name] = map[string]interface{}{"value": v.Value}
	}
	return m
}

// Object wraps the set the way it appears on a grid object.
func (s Set) Object() map[string]interface{} {
	return map[string]interface{}{ExtAttrsKey: s.Map()}
}

// Get reads the attribute name from the set with the same rules as the
// package level Get.
func (s Set) Get(name string, preferList bool) interface{} {
	return Get(name, s.Object(), preferList)
}

// Get reads the value of the attribute name from obj, a decoded grid object
// holding an "extattrs" member. It returns nil when name is empty, obj is
// nil, or the attribute is absent or not shaped as {"value": v}.
//
// With preferList set a scalar value is returned as a one element list.
// List values are returned as stored whether or not preferList is set.
func Get(name string, obj map[string]interface{}, preferList bool) interface{} {
	if name == "" || obj == nil {
		return nil
	}
	attrs, ok := asMap(obj[ExtAttrsKey])
	if !ok {
		return nil
	}
	raw, present := attrs[name]
	if !present {
		return nil
	}

	var v interface{}
	switch wrapped := raw.(type) {
	case Value:
		v = wrapped.Value
	default:
		m, ok := asMap(raw)
		if !ok {
			log.L.WithFields(logrus.Fields{
				"attribute": name,
			}).Debug("extensible attribute is not a value object")
			return nil
		}
		v = m["value"]
	}

	switch v.(type) {
	case []string, []interface{}:
		return v
	case nil:
		return nil
	}
	if preferList {
		if s, ok := v.(string); ok {
			return []string{s}
		}
		return []interface{}{v}
	}
	return v
}

// GetString reads a scalar string attribute. List values and non-string
// scalars are reported as a miss.
func GetString(name string, obj map[string]interface{}) (string, bool) {
	s, ok := Get(name, obj, false).(string)
	return s, ok
}

// GetList reads an attribute as a list of strings, wrapping scalars.
// Elements that are not strings make the whole attribute a miss.
func GetList(name string, obj map[string]interface{}) ([]string, bool) {
	switch v := Get(name, obj, true).(type) {
	case []string:
		return v, true
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	}
	return nil, false
}

// GetBool reads an attribute stored as "True"/"False" (any case) or as a
// JSON boolean.
func GetBool(name string, obj map[string]interface{}) (bool, bool) {
	switch v := Get(name, obj, false).(type) {
	case bool:
		return v, true
	case string:
		switch v {
		case "True", "true", "TRUE":
			return true, true
		case "False", "false", "FALSE":
			return false, true
		}
	}
	return false, false
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case Set:
		return m.Map(), true
	}
	return nil, false
}
