package object_test

import "github.com/plus3/gobject/object"

// Common test component types

// Counter tallies every lifecycle hook invocation.
type Counter struct {
	object.Base
	Starts   int
	Pres     int
	Updates  int
	Posts    int
	Releases int
}

func (c *Counter) OnStart()      { c.Starts++ }
func (c *Counter) OnPreUpdate()  { c.Pres++ }
func (c *Counter) OnUpdate()     { c.Updates++ }
func (c *Counter) OnPostUpdate() { c.Posts++ }
func (c *Counter) OnRelease()    { c.Releases++ }

// eventLog records hook firings across components in order.
type eventLog struct {
	events []string
}

func (l *eventLog) add(event string) {
	l.events = append(l.events, event)
}

// Tracker appends a labeled entry to a shared log from every hook.
type Tracker struct {
	object.Base
	log   *eventLog
	label string
}

func newTracker(log *eventLog, label string) *Tracker {
	return &Tracker{log: log, label: label}
}

func (t *Tracker) OnStart()      { t.log.add(t.label + ".start") }
func (t *Tracker) OnPreUpdate()  { t.log.add(t.label + ".pre") }
func (t *Tracker) OnUpdate()     { t.log.add(t.label + ".update") }
func (t *Tracker) OnPostUpdate() { t.log.add(t.label + ".post") }
func (t *Tracker) OnRelease()    { t.log.add(t.label + ".release") }

// FuncComponent dispatches hooks to optional callbacks, for tests that need
// to mutate the owner or manager mid-dispatch.
type FuncComponent struct {
	object.Base
	Start   func()
	Pre     func()
	Upd     func()
	Post    func()
	Release func()
}

func (f *FuncComponent) OnStart() {
	if f.Start != nil {
		f.Start()
	}
}

func (f *FuncComponent) OnPreUpdate() {
	if f.Pre != nil {
		f.Pre()
	}
}

func (f *FuncComponent) OnUpdate() {
	if f.Upd != nil {
		f.Upd()
	}
}

func (f *FuncComponent) OnPostUpdate() {
	if f.Post != nil {
		f.Post()
	}
}

func (f *FuncComponent) OnRelease() {
	if f.Release != nil {
		f.Release()
	}
}

// Plain typed components for the generic attach/lookup path.
type Transform struct {
	object.Base
	X, Y float64
}

type Velocity struct {
	object.Base
	DX, DY float64
}

type Health struct {
	object.Base
	Current, Max int
}
