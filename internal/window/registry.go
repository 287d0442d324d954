package window

import "fmt"

// Entry is one binding in a Registry
type Entry[K comparable, V comparable] struct {
	ID       K
	Value    V
	Multiple bool
}

// Registry maps identities to live values. An identity holds a single value
// unless every value bound to it allows multiples. Bindings keep their
// registration order.
type Registry[K comparable, V comparable] struct {
	entries   []Entry[K, V]
	normalize func(K) K
}

// NewRegistry creates a registry. normalize may be nil.
func NewRegistry[K comparable, V comparable](normalize func(K) K) *Registry[K, V] {
	return &Registry[K, V]{normalize: normalize}
}

func (r *Registry[K, V]) norm(id K) K {
	if r.normalize == nil {
		return id
	}
	return r.normalize(id)
}

// Register binds v under id
func (r *Registry[K, V]) Register(id K, v V, allowMultiple bool) error {
	id = r.norm(id)
	var zero K
	if id == zero {
		return ErrEmptyIdentity
	}

	for _, e := range r.entries {
		if e.ID != id {
			continue
		}
		if e.Value == v {
			return nil
		}
		if !allowMultiple || !e.Multiple {
			return &DuplicateIdentityError{Identity: fmt.Sprint(id), Existing: e.Value}
		}
	}

	r.entries = append(r.entries, Entry[K, V]{ID: id, Value: v, Multiple: allowMultiple})
	return nil
}

// Unregister removes the binding of v under id. It reports whether anything was removed.
func (r *Registry[K, V]) Unregister(id K, v V) bool {
	id = r.norm(id)
	for i, e := range r.entries {
		if e.ID == id && e.Value == v {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup returns the earliest value registered under id
func (r *Registry[K, V]) Lookup(id K) (V, bool) {
	id = r.norm(id)
	for _, e := range r.entries {
		if e.ID == id {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Rename moves v to newID. On conflict nothing changes.
func (r *Registry[K, V]) Rename(v V, newID K) error {
	newID = r.norm(newID)
	var zero K
	if newID == zero {
		return ErrEmptyIdentity
	}

	idx := -1
	for i, e := range r.entries {
		if e.Value == v {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotRegistered
	}
	if r.entries[idx].ID == newID {
		return nil
	}

	for _, e := range r.entries {
		if e.ID == newID && e.Value != v {
			return &DuplicateIdentityError{Identity: fmt.Sprint(newID), Existing: e.Value}
		}
	}

	r.entries[idx].ID = newID
	return nil
}

// IdentityOf returns the identity v is bound under
func (r *Registry[K, V]) IdentityOf(v V) (K, bool) {
	for _, e := range r.entries {
		if e.Value == v {
			return e.ID, true
		}
	}
	var zero K
	return zero, false
}

// All returns a copy of the bindings in registration order
func (r *Registry[K, V]) All() []Entry[K, V] {
	out := make([]Entry[K, V], len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of bindings
func (r *Registry[K, V]) Len() int {
	return len(r.entries)
}
