package gutter

// Bookmarks returns the tracked icons that use the bookmark icon, in
// document order.
func (g *Gutter) Bookmarks() []*TrackedIcon {
	if g.bookmarkIcon == nil {
		return nil
	}
	g.ensureOrder()
	var marks []*TrackedIcon
	for _, ti := range g.icons {
		if sameIcon(ti.icon, g.bookmarkIcon) {
			marks = append(marks, ti)
		}
	}
	return marks
}

// BookmarkIcon returns the icon used for bookmarks, or nil.
func (g *Gutter) BookmarkIcon() Icon {
	return g.bookmarkIcon
}

// SetBookmarkIcon removes every bookmark made with the current icon and
// uses icon for new ones. Icons already tracked with icon are not touched.
func (g *Gutter) SetBookmarkIcon(icon Icon) {
	if icon != nil && !comparableIcon(icon) {
		g.logger.Warn("bookmark icon %T is not comparable, toggled bookmarks will not be found", icon)
	}
	g.removeBookmarks()
	g.bookmarkIcon = icon
	g.repaint()
}

// BookmarkingEnabled reports whether the bookmark toggle is switched on.
// Toggling also needs a bookmark icon.
func (g *Gutter) BookmarkingEnabled() bool {
	return g.bookmarkingEnabled
}

// SetBookmarkingEnabled switches the bookmark toggle. Switching it off
// removes all bookmarks.
func (g *Gutter) SetBookmarkingEnabled(enabled bool) {
	if enabled == g.bookmarkingEnabled {
		return
	}
	g.bookmarkingEnabled = enabled
	if !enabled {
		g.removeBookmarks()
	}
	g.repaint()
}

// SetBookmarkListener sets the veto listener. nil approves everything.
func (g *Gutter) SetBookmarkListener(l BookmarkListener) {
	g.listener = l
}

// ToggleBookmark removes the bookmarks on line, or adds one at the start
// of the line if it has none. It returns true when a bookmark was to be
// added and false when bookmarks were to be removed. A listener veto
// skips the change without affecting the result.
//
// When bookmarking is off or no bookmark icon is set, ToggleBookmark
// does nothing and returns false.
func (g *Gutter) ToggleBookmark(line int) (bool, error) {
	if !g.canBookmark() {
		return false, nil
	}

	icons, err := g.TrackingIconsAt(line)
	if err != nil {
		return false, err
	}

	found := false
	for _, ti := range icons {
		if !sameIcon(ti.icon, g.bookmarkIcon) {
			continue
		}
		found = true
		if g.approveRemove(line) {
			g.RemoveTrackingIcon(ti)
		} else {
			g.logger.Debug("removal of bookmark on line %d vetoed", line)
		}
	}
	if found {
		return false, nil
	}

	if !g.approveAdd(line) {
		g.logger.Debug("bookmark on line %d vetoed", line)
		return true, nil
	}
	start, err := g.host.LineStartOffset(line)
	if err != nil {
		return false, err
	}
	if _, err := g.AddTrackingIcon(start, g.bookmarkIcon); err != nil {
		return false, err
	}
	return true, nil
}

func (g *Gutter) canBookmark() bool {
	return g.bookmarkingEnabled && g.bookmarkIcon != nil
}

func (g *Gutter) approveAdd(line int) bool {
	return g.listener == nil || g.listener.BeforeAddBookmark(line)
}

func (g *Gutter) approveRemove(line int) bool {
	return g.listener == nil || g.listener.BeforeRemoveBookmark(line)
}

func (g *Gutter) removeBookmarks() {
	if g.bookmarkIcon == nil {
		return
	}
	kept := g.icons[:0]
	for _, ti := range g.icons {
		if sameIcon(ti.icon, g.bookmarkIcon) {
			ti.release()
			continue
		}
		kept = append(kept, ti)
	}
	// Clear the tail so dropped icons can be collected.
	for i := len(kept); i < len(g.icons); i++ {
		g.icons[i] = nil
	}
	g.icons = kept
}
