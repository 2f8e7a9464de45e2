// Package gutter implements the icon row drawn to the left of a text view.
//
// A Gutter keeps an ordered registry of tracked icons. Each one is bound to
// a self-adjusting Position obtained from the Host, so it stays on its line
// while the document is edited. One icon identity can be designated the
// bookmark icon. Clicking the gutter then toggles a bookmark on the clicked
// line, subject to an optional BookmarkListener veto.
//
// Painting has two strategies, chosen by Host.LineWrap:
//
//   - fixed height: every logical line is one row of LineHeight pixels, so
//     line to pixel mapping is arithmetic. The registry is walked from the
//     end and the highest-index icon of each line wins.
//   - wrapped: a logical line may span several rows. Row heights come from
//     Host.LineBounds and the registry is walked forward. The last icon
//     registered for a line wins.
//
// At most one icon is painted per line. Icons are centred vertically in the
// first row of their line.
//
// # Thread Safety
//
// A Gutter is not safe for concurrent use. All calls, including the Host
// callbacks it makes, are expected on the UI event loop.
package gutter
