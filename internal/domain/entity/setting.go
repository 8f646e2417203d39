// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// Well-known setting document IDs.
const (
	SettingDeliveryFee = "deliveryFee"
	SettingUPIID       = "upiId"
)

// Setting is one entry of the global keyed settings mapping. Settings are
// written only by admins and read by everyone.
type Setting struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

// DocumentID keys the setting in the settings collection.
func (s Setting) DocumentID() string {
	return s.ID
}

// IntValue returns the value as an int, falling back to def when the value is
// absent or not numeric. JSON round-trips numbers as float64 or json.Number,
// so both are accepted.
func (s Setting) IntValue(def int) int {
	switch v := s.Value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}

	return def
}

// StringValue returns the value as a string, falling back to def otherwise.
func (s Setting) StringValue(def string) string {
	if v, ok := s.Value.(string); ok && v != "" {
		return v
	}

	return def
}
