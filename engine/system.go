package engine

// System represents one step of the frame. Systems are structs that
// implement Execute and may declare Singleton fields, which the Scheduler
// binds on Register, as well as private state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
