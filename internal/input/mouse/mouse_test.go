package mouse

import (
	"fmt"
	"testing"
	"time"
)

type recorder struct {
	calls []string
}

func (r *recorder) MousePressed(ev Event) {
	r.calls = append(r.calls, fmt.Sprintf("press %d,%d x%d", ev.Position.X, ev.Position.Y, ev.ClickCount))
}
func (r *recorder) MouseReleased(ev Event) {
	r.calls = append(r.calls, fmt.Sprintf("release %d,%d", ev.Position.X, ev.Position.Y))
}
func (r *recorder) MouseEntered(Event) { r.calls = append(r.calls, "enter") }
func (r *recorder) MouseExited(Event)  { r.calls = append(r.calls, "exit") }

func event(x, y int, a Action) Event {
	return Event{Position: Position{X: x, Y: y}, Button: ButtonLeft, Action: a}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonScrollUp, "scroll-up"},
		{ButtonScrollDown, "scroll-down"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDispatcherRoutesToRegion(t *testing.T) {
	d := NewDispatcher(DefaultConfig())
	gutter := &recorder{}
	text := &recorder{}
	d.Register(Region{X: 0, Y: 0, W: 2, H: 10}, gutter, nil)
	d.Register(Region{X: 2, Y: 0, W: 40, H: 10}, text, nil)

	d.Dispatch(event(1, 3, ActionPress))
	d.Dispatch(event(1, 3, ActionRelease))
	d.Dispatch(event(5, 4, ActionMove))

	want := []string{"enter", "press 1,3 x1", "release 1,3", "exit"}
	if fmt.Sprint(gutter.calls) != fmt.Sprint(want) {
		t.Errorf("gutter calls = %v, want %v", gutter.calls, want)
	}
	if fmt.Sprint(text.calls) != fmt.Sprint([]string{"enter"}) {
		t.Errorf("text calls = %v", text.calls)
	}
}

func TestDispatcherReleaseGoesToPressTarget(t *testing.T) {
	d := NewDispatcher(DefaultConfig())
	gutter := &recorder{}
	d.Register(Region{X: 0, Y: 0, W: 2, H: 10}, gutter, nil)

	d.Dispatch(event(0, 0, ActionPress))
	if !d.Dispatch(event(30, 0, ActionRelease)) {
		t.Fatal("release should be delivered")
	}
	last := gutter.calls[len(gutter.calls)-1]
	if last != "release 30,0" {
		t.Errorf("last call = %q", last)
	}
}

func TestDispatcherTranslate(t *testing.T) {
	d := NewDispatcher(DefaultConfig())
	r := &recorder{}
	d.Register(Region{X: 0, Y: 2, W: 2, H: 10}, r, func(p Position) Position {
		return Position{X: p.X, Y: (p.Y - 2 + 5) * 15}
	})

	d.Dispatch(event(0, 3, ActionPress))
	if r.calls[1] != "press 0,90 x1" {
		t.Errorf("press call = %q", r.calls[1])
	}
}

func TestDispatcherClickCount(t *testing.T) {
	d := NewDispatcher(DefaultConfig())
	r := &recorder{}
	d.Register(Region{W: 5, H: 5}, r, nil)

	now := time.Now()
	for i := 0; i < 2; i++ {
		ev := event(1, 1, ActionPress)
		ev.Timestamp = now.Add(time.Duration(i) * 100 * time.Millisecond)
		d.Dispatch(ev)
	}
	if r.calls[2] != "press 1,1 x2" {
		t.Errorf("expected double click, got %v", r.calls)
	}

	d.Reset()
	ev := event(1, 1, ActionPress)
	ev.Timestamp = now.Add(200 * time.Millisecond)
	d.Dispatch(ev)
	if r.calls[len(r.calls)-1] != "press 1,1 x1" {
		t.Errorf("expected click count reset, got %v", r.calls)
	}
}

func TestDispatcherIgnoresOutside(t *testing.T) {
	d := NewDispatcher(DefaultConfig())
	r := &recorder{}
	d.Register(Region{W: 2, H: 2}, r, nil)
	if d.Dispatch(event(9, 9, ActionPress)) {
		t.Error("press outside any region should not be delivered")
	}
	if len(r.calls) != 0 {
		t.Errorf("unexpected calls %v", r.calls)
	}
}

func TestScrollLines(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		ev   Event
		want int
	}{
		{"up", Event{Button: ButtonScrollUp, Action: ActionPress}, -3},
		{"down", Event{Button: ButtonScrollDown, Action: ActionPress}, 3},
		{"shift", Event{Button: ButtonScrollDown, Action: ActionPress, Modifiers: ModShift}, 1},
		{"click", Event{Button: ButtonLeft, Action: ActionPress}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollLines(tt.ev, cfg); got != tt.want {
				t.Errorf("ScrollLines = %d, want %d", got, tt.want)
			}
		})
	}
}
