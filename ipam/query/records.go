package query

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/openstack/networking-infoblox/ipam/errors"
)

// Record is a single decoded object or row, keyed by field name.
type Record map[string]interface{}

// Values returns record[key] for every record, in order. A record without
// key is an error.
func Values(key string, records []Record) ([]interface{}, error) {
	if records == nil {
		return nil, errors.ErrInvalidArgument("records must not be nil")
	}
	values := make([]interface{}, 0, len(records))
	for i, r := range records {
		v, ok := r[key]
		if !ok {
			return nil, errors.ErrInvalidArgument("record %d has no field %q", i, key)
		}
		values = append(values, v)
	}
	return values, nil
}

// CompositeValues returns, for every record, the values of keys formatted
// with fmt.Sprint and joined with delimiter, in the order keys are given.
func CompositeValues(keys []string, records []Record, delimiter string) ([]string, error) {
	if keys == nil || records == nil {
		return nil, errors.ErrInvalidArgument("keys and records must not be nil")
	}
	values := make([]string, 0, len(records))
	parts := make([]string, len(keys))
	for i, r := range records {
		for j, k := range keys {
			v, ok := r[k]
			if !ok {
				return nil, errors.ErrInvalidArgument("record %d has no field %q", i, k)
			}
			parts[j] = fmt.Sprint(v)
		}
		values = append(values, strings.Join(parts, delimiter))
	}
	return values, nil
}

// FindOne returns the first record whose key field equals value, or nil.
func FindOne(key string, value interface{}, records []Record) (Record, error) {
	if key == "" || value == nil || records == nil {
		return nil, errors.ErrInvalidArgument("key, value and records are required")
	}
	for _, r := range records {
		if v, ok := r[key]; ok && equal(v, value) {
			return r, nil
		}
	}
	return nil, nil
}

// FindByConditions returns the records matching every key/value pair of
// conditions.
func FindByConditions(conditions map[string]interface{}, records []Record) ([]Record, error) {
	if conditions == nil || records == nil {
		return nil, errors.ErrInvalidArgument("conditions and records must not be nil")
	}
	if len(records) == 0 {
		return nil, nil
	}
	found := []Record{}
	for _, r := range records {
		if matches(r, conditions) {
			found = append(found, r)
		}
	}
	return found, nil
}

// FindByValues returns the records whose key field is one of values, in
// record order.
func FindByValues(key string, values []interface{}, records []Record) ([]Record, error) {
	if key == "" || values == nil || records == nil {
		return nil, errors.ErrInvalidArgument("key, values and records are required")
	}
	if len(records) == 0 {
		return nil, nil
	}
	found := []Record{}
	for _, r := range records {
		v, ok := r[key]
		if !ok {
			continue
		}
		for _, want := range values {
			if equal(v, want) {
				found = append(found, r)
				break
			}
		}
	}
	return found, nil
}

// FindWithKey returns the records that have a key field, whatever its value.
func FindWithKey(key string, records []Record) ([]Record, error) {
	if key == "" || records == nil {
		return nil, errors.ErrInvalidArgument("key and records are required")
	}
	if len(records) == 0 {
		return nil, nil
	}
	found := []Record{}
	for _, r := range records {
		if _, ok := r[key]; ok {
			found = append(found, r)
		}
	}
	return found, nil
}

func matches(r Record, conditions map[string]interface{}) bool {
	for k, want := range conditions {
		v, ok := r[k]
		if !ok || !equal(v, want) {
			return false
		}
	}
	return true
}

// equal compares decoded values; lists and maps compare by content.
func equal(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}
