package engine

import (
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// Resources stores singleton values keyed by their Go type. A resource is
// any value the whole loop shares: game state, geometry, output sinks.
//
// Pointers returned by Insert and Get stay valid for the lifetime of the
// Resources; inserting a value of an existing type overwrites it in place.
type Resources struct {
	ids    map[reflect.Type]uint32
	names  []string
	values *intmap.Map[uint32, any]
}

// NewResources creates an empty resource store.
func NewResources() *Resources {
	return &Resources{
		ids:    make(map[reflect.Type]uint32),
		values: intmap.New[uint32, any](16),
	}
}

// typeId returns the id assigned to t, assigning the next free one on first use.
func (r *Resources) typeId(t reflect.Type) uint32 {
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := uint32(len(r.names) + 1)
	r.ids[t] = id
	r.names = append(r.names, t.String())
	return id
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Insert stores value as the resource of type T and returns a pointer to it.
func Insert[T any](r *Resources, value T) *T {
	id := r.typeId(typeOf[T]())
	if existing, ok := r.values.Get(id); ok {
		ptr := existing.(*T)
		*ptr = value
		return ptr
	}
	ptr := new(T)
	*ptr = value
	r.values.Put(id, ptr)
	return ptr
}

// Get returns the resource of type T, or nil if none has been inserted.
func Get[T any](r *Resources) *T {
	id, ok := r.ids[typeOf[T]()]
	if !ok {
		return nil
	}
	value, ok := r.values.Get(id)
	if !ok {
		return nil
	}
	return value.(*T)
}

// Has reports whether a resource of type T exists.
func Has[T any](r *Resources) bool {
	return Get[T](r) != nil
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return r.values.Len()
}

// Names returns the type names of all stored resources, sorted.
func (r *Resources) Names() []string {
	names := slices.Clone(r.names)
	slices.Sort(names)
	return names
}
