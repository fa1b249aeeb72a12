package dto

import (
	"bytes"
	"encoding/json"
)

type InitiateInput struct {
	OrderID int64 `json:"order_id"`
}

type InitiateResult struct {
	PaymentURL string     `json:"payment_url"`
	FormData   FormFields `json:"form_data"`
}

// FormField is one gateway form field. The gateway validates the signature
// byte-for-byte against the field order, so fields live in a slice, not a
// map.
type FormField struct {
	Key   string
	Value string
}

type FormFields []FormField

// MarshalJSON renders the fields as a JSON object preserving insertion
// order.
func (f FormFields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value for a key, for tests and callers that need a single
// field.
func (f FormFields) Get(key string) string {
	for _, field := range f {
		if field.Key == key {
			return field.Value
		}
	}
	return ""
}
