package hash

import (
	"github.com/lyraproj/sonicweave/dsl"
)

// Mutable and order preserving hash with string keys and dsl.Value values. Used
// as the binding table of scopes.

type (
	stringEntry struct {
		key   string
		value dsl.Value
	}

	StringHash struct {
		entries []*stringEntry
		index   map[string]int
	}
)

// NewStringHash returns an empty *StringHash initialized with given capacity
func NewStringHash(capacity int) *StringHash {
	return &StringHash{make([]*stringEntry, 0, capacity), make(map[string]int, capacity)}
}

// Get returns a value from the hash together with a boolean to indicate if the key was present or not
func (h *StringHash) Get(key string) (dsl.Value, bool) {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value, true
	}
	return nil, false
}

// Keys returns the keys of the hash in the order that they were first entered
func (h *StringHash) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.key
	}
	return keys
}

// Put adds a new key/value association to the hash or replace the value of an existing association
func (h *StringHash) Put(key string, value dsl.Value) (oldValue dsl.Value) {
	if p, ok := h.index[key]; ok {
		e := h.entries[p]
		oldValue = e.value
		e.value = value
	} else {
		h.index[key] = len(h.entries)
		h.entries = append(h.entries, &stringEntry{key, value})
	}
	return
}
