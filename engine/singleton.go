package engine

// Singleton provides access to a single resource of type T. Declare it as a
// field on a system; the Scheduler binds it on Register.
type Singleton[T any] struct {
	resources *Resources
	ptr       *T
}

// NewSingleton creates a Singleton accessor for the given resources.
// If the resource does not exist yet it is created from initializer,
// or from the zero value when no initializer is given.
func NewSingleton[T any](resources *Resources, initializer ...T) *Singleton[T] {
	if !Has[T](resources) {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		Insert(resources, value)
	}

	s := &Singleton[T]{}
	s.Init(resources)
	return s
}

// Init binds the Singleton to a resource store.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(resources *Resources) {
	s.resources = resources
	s.ptr = Get[T](resources)
}

// Get returns a pointer to the resource, or nil if it was never inserted.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil && s.resources != nil {
		s.ptr = Get[T](s.resources)
	}
	return s.ptr
}

// Exists returns true if the resource has been inserted.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
