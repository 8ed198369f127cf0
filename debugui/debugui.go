// Package debugui provides a Dear ImGui overlay for inspecting the game loop.
// Render functions are collected in a resource and run at the end of every
// update frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiItems is the resource listing every window to draw each frame.
type ImguiItems struct {
	Items []ImguiItem
}

// Add appends a render function.
func (i *ImguiItems) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// ImguiInputState tracks Dear ImGui's input capture state as a resource.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and defers every item's render function.
type ImguiSystem struct {
	Items      engine.Singleton[ImguiItems]
	InputState engine.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items.Get().Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install stores the overlay resources and registers ImguiSystem. Register
// it last so the windows see the state of the finished tick.
func Install(scheduler *engine.Scheduler) *ImguiItems {
	resources := scheduler.Resources()
	engine.NewSingleton(resources, ImguiInputState{})
	items := engine.NewSingleton(resources, ImguiItems{})
	scheduler.Register(&ImguiSystem{})
	return items.Get()
}
