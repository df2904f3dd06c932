// Package debugui provides immediate-mode GUI inspection windows for a live
// object Manager using Dear ImGui. The widgets are themselves components:
// Attach hangs them off a dedicated object so their caches refresh through
// the ordinary update phases, and the host application calls RenderAll inside
// its ImGui frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gobject/object"
)

// ImguiInputState tracks Dear ImGui's input capture state. Use this to
// determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ReadInputState samples the current ImGui input capture state.
func ReadInputState() ImguiInputState {
	io := imgui.CurrentIO()
	return ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Attach creates a "DebugUI" object in the manager and attaches the debug
// widget components to it. The returned object can be deactivated to tear
// the debug UI down through the normal reclamation pass.
func Attach(manager *object.Manager, loop *object.Loop) *object.GameObject {
	obj := manager.GenerateObject("DebugUI")
	object.AddComponent(obj, NewObjectBrowserComponent(manager, 100))
	object.AddComponent(obj, NewComponentInspectorComponent(manager))
	object.AddComponent(obj, NewLoopStatsComponent(loop, 120))
	return obj
}

// RenderAll renders every debug widget attached to obj, feeding the browser's
// selection into the inspector. Call it between ImGui NewFrame and Render.
func RenderAll(obj *object.GameObject) {
	var selected object.ObjectID

	if browser, ok := object.GetComponent[*ObjectBrowserComponent](obj).Get(); ok {
		browser.Render()
		selected = browser.GetSelectedID()
	}
	if inspector, ok := object.GetComponent[*ComponentInspectorComponent](obj).Get(); ok {
		inspector.Render(selected)
	}
	if stats, ok := object.GetComponent[*LoopStatsComponent](obj).Get(); ok {
		stats.Render()
	}
}
