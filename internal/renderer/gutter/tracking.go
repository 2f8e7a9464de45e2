package gutter

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// TrackedIcon is an icon bound to a document position. It is the handle
// returned by AddTrackingIcon and is compared by identity.
type TrackedIcon struct {
	id   uuid.UUID
	icon Icon
	pos  Position
}

// Icon returns the icon.
func (t *TrackedIcon) Icon() Icon {
	return t.icon
}

// Offset returns the current document offset of the icon.
func (t *TrackedIcon) Offset() int {
	return t.pos.Offset()
}

// ID returns a unique identifier, used in logs.
func (t *TrackedIcon) ID() uuid.UUID {
	return t.id
}

// String implements fmt.Stringer.
func (t *TrackedIcon) String() string {
	return fmt.Sprintf("TrackedIcon{id=%s, offset=%d}", t.id, t.Offset())
}

func (t *TrackedIcon) release() {
	if r, ok := t.pos.(releaser); ok {
		r.Release()
	}
}

// AddTrackingIcon tracks icon at offset and returns its handle.
// Icons at the same offset keep the order they were added in.
func (g *Gutter) AddTrackingIcon(offset int, icon Icon) (*TrackedIcon, error) {
	if g.host == nil {
		return nil, ErrNoHost
	}
	if n := g.host.DocumentLength(); offset < 0 || offset > n {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, offset, n)
	}
	pos, err := g.host.CreatePosition(offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %v", ErrInvalidOffset, offset, err)
	}

	ti := &TrackedIcon{id: uuid.New(), icon: icon, pos: pos}

	g.ensureOrder()
	i := sort.Search(len(g.icons), func(i int) bool {
		return g.icons[i].Offset() > offset
	})
	g.icons = append(g.icons, nil)
	copy(g.icons[i+1:], g.icons[i:])
	g.icons[i] = ti

	g.logger.Debug("added %s at index %d", ti, i)
	g.repaint()
	return ti, nil
}

// RemoveTrackingIcon stops tracking ti. Unknown handles are ignored.
func (g *Gutter) RemoveTrackingIcon(ti *TrackedIcon) {
	for i, t := range g.icons {
		if t == ti {
			g.icons = append(g.icons[:i], g.icons[i+1:]...)
			ti.release()
			g.logger.Debug("removed %s", ti)
			g.repaint()
			return
		}
	}
}

// RemoveAllTrackingIcons drops every tracked icon.
func (g *Gutter) RemoveAllTrackingIcons() {
	if len(g.icons) == 0 {
		return
	}
	g.clearIcons()
	g.repaint()
}

// TrackingIconCount returns the number of tracked icons.
func (g *Gutter) TrackingIconCount() int {
	return len(g.icons)
}

// TrackingIconsAt returns the icons whose offset lies on line, in
// registry order.
func (g *Gutter) TrackingIconsAt(line int) ([]*TrackedIcon, error) {
	start, end, err := g.lineSpan(line)
	if err != nil {
		return nil, err
	}

	g.ensureOrder()
	var found []*TrackedIcon
	for _, ti := range g.icons {
		off := ti.Offset()
		if off >= end {
			break
		}
		if off >= start {
			found = append(found, ti)
		}
	}
	return found, nil
}

// lineSpan returns [start, end) of line. The last line's end is pushed
// one past the document length so an icon at the very end is found.
func (g *Gutter) lineSpan(line int) (start, end int, err error) {
	if g.host == nil {
		return 0, 0, ErrNoHost
	}
	n := g.host.LineCount()
	if line < 0 || line >= n {
		return 0, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidLine, line, n)
	}
	if start, err = g.host.LineStartOffset(line); err != nil {
		return 0, 0, fmt.Errorf("%w: %d: %v", ErrInvalidLine, line, err)
	}
	if end, err = g.host.LineEndOffset(line); err != nil {
		return 0, 0, fmt.Errorf("%w: %d: %v", ErrInvalidLine, line, err)
	}
	if line == n-1 {
		end++
	}
	return start, end, nil
}

// ensureOrder restores offset order if the document model ever let two
// positions cross. Positions that follow edits never reorder, so this is
// normally a single pass of comparisons.
func (g *Gutter) ensureOrder() {
	less := func(i, j int) bool {
		return g.icons[i].Offset() < g.icons[j].Offset()
	}
	if !sort.SliceIsSorted(g.icons, less) {
		g.logger.Warn("tracking icons out of order, re-sorting %d icons", len(g.icons))
		sort.SliceStable(g.icons, less)
	}
}

func (g *Gutter) clearIcons() {
	for _, ti := range g.icons {
		ti.release()
	}
	g.icons = nil
}
