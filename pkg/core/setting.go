package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Setting is an insertion ordered key -> string record. It carries chart
// object settings between the plot and its persistence collaborator and the
// ordered label -> value pairs of the info panel.
type Setting struct {
	keys   []string
	values map[string]string
}

// NewSetting creates an empty record
func NewSetting() *Setting {
	return &Setting{values: make(map[string]string)}
}

// Set stores a value, keeping the original position of an existing key
func (s *Setting) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for key or an empty string
func (s *Setting) Get(key string) string {
	if s == nil {
		return ""
	}
	return s.values[key]
}

// Lookup returns the value for key and whether it was present
func (s *Setting) Lookup(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// Remove deletes a key
func (s *Setting) Remove(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order
func (s *Setting) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of entries
func (s *Setting) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Copy returns a deep copy of the record
func (s *Setting) Copy() *Setting {
	out := NewSetting()
	if s == nil {
		return out
	}
	for _, k := range s.keys {
		out.Set(k, s.values[k])
	}
	return out
}

// SetFloat stores a float with full precision
func (s *Setting) SetFloat(key string, v float64) {
	s.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// Float parses a float value, returning def when missing or invalid
func (s *Setting) Float(key string, def float64) float64 {
	v, err := strconv.ParseFloat(s.Get(key), 64)
	if err != nil {
		return def
	}
	return v
}

// SetInt stores an integer
func (s *Setting) SetInt(key string, v int) {
	s.Set(key, strconv.Itoa(v))
}

// Int parses an integer value, returning def when missing or invalid
func (s *Setting) Int(key string, def int) int {
	v, err := strconv.Atoi(s.Get(key))
	if err != nil {
		return def
	}
	return v
}

// SetBool stores a boolean as 0/1
func (s *Setting) SetBool(key string, v bool) {
	if v {
		s.Set(key, "1")
		return
	}
	s.Set(key, "0")
}

// Bool parses a boolean value, returning def when missing or invalid
func (s *Setting) Bool(key string, def bool) bool {
	v, err := strconv.ParseBool(s.Get(key))
	if err != nil {
		return def
	}
	return v
}

// SetTime stores a timestamp in RFC3339 with nanoseconds
func (s *Setting) SetTime(key string, t time.Time) {
	s.Set(key, t.Format(time.RFC3339Nano))
}

// Time parses a timestamp value
func (s *Setting) Time(key string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s.Get(key))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MarshalJSON encodes the record as a JSON object preserving key order
func (s Setting) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of strings preserving key order
func (s *Setting) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read setting: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("setting must be a JSON object")
	}

	*s = Setting{values: make(map[string]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read setting key: %w", err)
		}
		key, _ := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to read setting %q: %w", key, err)
		}
		s.Set(key, value)
	}

	_, err = dec.Token()
	return err
}
