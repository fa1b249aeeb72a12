package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// The catalog stores a handful of structured values as JSON text columns.
// Each gets one typed codec implementing driver.Valuer and sql.Scanner.
// Malformed stored JSON scans to the type's empty value instead of failing
// the query; rows written through this code are always well formed.

// StringList is a JSON array of strings (model compatibility lists).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "marshal string list")
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	*l = StringList{}
	b, ok := jsonBytes(src)
	if !ok || len(b) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	*l = out
	return nil
}

// SpecMap is a JSON object of free-form key/value specification pairs.
type SpecMap map[string]string

func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		m = SpecMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "marshal spec map")
	}
	return string(b), nil
}

func (m *SpecMap) Scan(src interface{}) error {
	*m = SpecMap{}
	b, ok := jsonBytes(src)
	if !ok || len(b) == 0 {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	*m = out
	return nil
}

// Dimensions is the optional length/width/height block on a product.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit,omitempty"`
}

func (d *Dimensions) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "marshal dimensions")
	}
	return string(b), nil
}

// NullDimensions wraps an optional Dimensions column.
type NullDimensions struct {
	Dimensions *Dimensions
}

func (n NullDimensions) Value() (driver.Value, error) {
	if n.Dimensions == nil {
		return nil, nil
	}
	return n.Dimensions.Value()
}

func (n *NullDimensions) Scan(src interface{}) error {
	n.Dimensions = nil
	b, ok := jsonBytes(src)
	if !ok || len(b) == 0 {
		return nil
	}
	var out Dimensions
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	n.Dimensions = &out
	return nil
}

func (n NullDimensions) MarshalJSON() ([]byte, error) {
	if n.Dimensions == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Dimensions)
}

func (n *NullDimensions) UnmarshalJSON(b []byte) error {
	n.Dimensions = nil
	if string(b) == "null" {
		return nil
	}
	var out Dimensions
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	n.Dimensions = &out
	return nil
}

func jsonBytes(src interface{}) ([]byte, bool) {
	switch v := src.(type) {
	case nil:
		return nil, false
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	}
	return nil, false
}
