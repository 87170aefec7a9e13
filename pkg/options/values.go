package options

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pair is a single key/value entry used to seed Values in a fixed order.
type Pair struct {
	Key   string
	Value any
}

// P is shorthand for building a Pair.
func P(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Values is an insertion-ordered option bag. The zero value is ready to use.
type Values struct {
	keys        []string
	entries     map[string]any
	initialised bool
}

// New returns Values seeded with pairs in the supplied order. Repeated keys
// keep their first position and take the last value.
func New(pairs ...Pair) *Values {
	v := &Values{}
	for _, pair := range pairs {
		v.Set(pair.Key, pair.Value)
	}
	return v
}

// Set stores value under key. New keys are appended; existing keys keep their
// position. Unknown keys are accepted without validation.
func (v *Values) Set(key string, value any) {
	if v.entries == nil {
		v.entries = make(map[string]any)
	}
	if _, exists := v.entries[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.entries[key] = value
}

// Get returns the value stored under key.
func (v *Values) Get(key string) (any, bool) {
	if v == nil || v.entries == nil {
		return nil, false
	}
	value, ok := v.entries[key]
	return value, ok
}

// String returns the stringified value for key, or "" when the key is unset.
func (v *Values) String(key string) string {
	value, ok := v.Get(key)
	if !ok || value == nil {
		return ""
	}
	return Stringify(value)
}

// Has reports whether key is present, regardless of its value.
func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Delete removes key and its position.
func (v *Values) Delete(key string) {
	if v == nil || v.entries == nil {
		return
	}
	if _, ok := v.entries[key]; !ok {
		return
	}
	delete(v.entries, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
}

// Len reports the number of keys.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

// Keys returns a copy of the keys in insertion order.
func (v *Values) Keys() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.keys...)
}

// Each calls fn for every entry in insertion order.
func (v *Values) Each(fn func(key string, value any)) {
	if v == nil || fn == nil {
		return
	}
	for _, key := range v.keys {
		fn(key, v.entries[key])
	}
}

// Pairs returns the entries in insertion order.
func (v *Values) Pairs() []Pair {
	if v == nil {
		return nil
	}
	out := make([]Pair, 0, len(v.keys))
	for _, key := range v.keys {
		out = append(out, Pair{Key: key, Value: v.entries[key]})
	}
	return out
}

// Clone returns an independent copy that preserves order.
func (v *Values) Clone() *Values {
	out := &Values{}
	if v == nil {
		return out
	}
	out.initialised = v.initialised
	for _, key := range v.keys {
		out.Set(key, v.entries[key])
	}
	return out
}

// Assign copies every entry of other onto v. Existing keys keep their
// position; new keys are appended in other's order.
func (v *Values) Assign(other *Values) {
	other.Each(func(key string, value any) {
		v.Set(key, value)
	})
}

// Initialize seeds v with defaults the first time it is called and reports
// whether anything changed. Later calls are no-ops so handlers can call it
// freely within a session.
func (v *Values) Initialize(defaults *Values) bool {
	if v.initialised {
		return false
	}
	v.Assign(defaults)
	v.initialised = true
	return true
}

// Initialized reports whether Initialize has seeded v.
func (v *Values) Initialized() bool {
	return v != nil && v.initialised
}

// MarshalJSON encodes v as a JSON object preserving insertion order.
func (v *Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range v.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.entries[key])
		if err != nil {
			return nil, fmt.Errorf("options: marshal %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
