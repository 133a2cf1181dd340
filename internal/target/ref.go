// Package target provides a reference to a component that is either given
// directly or named by an identifier and looked up once construction has
// completed.
package target

// State is the resolution state of a Ref.
type State int

const (
	// Unset: neither a value nor an identifier has been given.
	Unset State = iota
	// Direct: the value was given directly.
	Direct
	// Pending: an identifier was given but not yet resolved.
	Pending
	// Resolved: the identifier was resolved to a value.
	Resolved
	// Missing: resolution was attempted and nothing has the identifier.
	Missing
)

func (s State) String() string {
	return [...]string{"unset", "direct", "pending", "resolved", "missing"}[s]
}

// Resolver looks up a T by identifier.
type Resolver[T any] interface {
	Lookup(id string) (T, bool)
}

// Ref refers to a T.
type Ref[T any] struct {
	id    string
	value T
	state State
}

// To returns a reference to v.
func To[T any](v T) Ref[T] {
	return Ref[T]{value: v, state: Direct}
}

// ByID returns a reference to whichever T has the identifier id, to be
// resolved later.
func ByID[T any](id string) Ref[T] {
	return Ref[T]{id: id, state: Pending}
}

func (r Ref[T]) State() State { return r.state }

func (r Ref[T]) ID() string { return r.id }

// Resolve resolves a pending or missing reference. Direct and resolved
// references are returned unchanged.
func (r Ref[T]) Resolve(resolver Resolver[T]) Ref[T] {
	switch r.state {
	case Pending, Missing:
		if v, ok := resolver.Lookup(r.id); ok {
			r.value = v
			r.state = Resolved
		} else {
			r.state = Missing
		}
	}
	return r
}

// Get returns the referenced T, or false if the reference is not yet
// resolved.
func (r Ref[T]) Get() (T, bool) {
	switch r.state {
	case Direct, Resolved:
		return r.value, true
	}
	return *new(T), false
}

// Registry is a Resolver backed by a map.
type Registry[T any] map[string]T

func (r Registry[T]) Lookup(id string) (T, bool) {
	v, ok := r[id]
	return v, ok
}
