package mouse

// Region is a rectangle of screen cells owned by a Listener.
type Region struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Translator maps a screen position inside a region to the listener's
// coordinate space.
type Translator func(p Position) Position

type target struct {
	region    Region
	listener  Listener
	translate Translator
}

// Dispatcher turns raw pointer reports into press, release, enter and
// exit calls on the listener whose region contains the pointer.
// It is not safe for concurrent use; call it from the event loop.
type Dispatcher struct {
	config  Config
	targets []*target
	hover   *target
	pressed *target
	click   *clickTracker
}

// NewDispatcher creates a dispatcher with the given configuration.
func NewDispatcher(config Config) *Dispatcher {
	return &Dispatcher{
		config: config,
		click:  newClickTracker(config.DoubleClickTime, config.DoubleClickDistance),
	}
}

// Register adds a listener for region. translate may be nil, in which
// case positions are made relative to the region's origin.
// Later registrations win where regions overlap.
func (d *Dispatcher) Register(region Region, l Listener, translate Translator) {
	if translate == nil {
		translate = func(p Position) Position {
			return Position{X: p.X - region.X, Y: p.Y - region.Y}
		}
	}
	d.targets = append(d.targets, &target{region: region, listener: l, translate: translate})
}

// SetRegion moves the region of an already registered listener.
func (d *Dispatcher) SetRegion(l Listener, region Region) {
	for _, t := range d.targets {
		if t.listener == l {
			t.region = region
		}
	}
}

// Dispatch routes ev. It returns true when a listener received the event.
func (d *Dispatcher) Dispatch(ev Event) bool {
	if ev.Button.IsScroll() {
		return false
	}

	t := d.targetAt(ev.Position)
	d.updateHover(t, ev)

	switch ev.Action {
	case ActionPress:
		if t == nil {
			return false
		}
		ev.ClickCount = d.click.recordClick(ev.Position, ev.Timestamp)
		d.pressed = t
		t.listener.MousePressed(d.local(t, ev))
		return true

	case ActionRelease:
		// Releases go to the listener that saw the press, even if the
		// pointer has left its region.
		p := d.pressed
		d.pressed = nil
		if p == nil {
			return false
		}
		p.listener.MouseReleased(d.local(p, ev))
		return true
	}
	return t != nil
}

// Reset forgets hover, press and click state.
func (d *Dispatcher) Reset() {
	d.hover = nil
	d.pressed = nil
	d.click.reset()
}

func (d *Dispatcher) targetAt(p Position) *target {
	for i := len(d.targets) - 1; i >= 0; i-- {
		if d.targets[i].region.Contains(p) {
			return d.targets[i]
		}
	}
	return nil
}

func (d *Dispatcher) updateHover(t *target, ev Event) {
	if t == d.hover {
		return
	}
	if d.hover != nil {
		d.hover.listener.MouseExited(d.local(d.hover, ev))
	}
	d.hover = t
	if t != nil {
		t.listener.MouseEntered(d.local(t, ev))
	}
}

func (d *Dispatcher) local(t *target, ev Event) Event {
	ev.Position = t.translate(ev.Position)
	return ev
}
