package layout

import "github.com/rivo/uniseg"

// NextTabStop returns the next tab stop column after col.
func NextTabStop(col, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return col + tabWidth - col%tabWidth
}

// ExpandedWidth calculates the visual width of s with tab expansion.
func ExpandedWidth(s string, tabWidth int) int {
	col := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			col = NextTabStop(col, tabWidth)
			continue
		}
		col += width
	}
	return col
}

// ExpandTabs returns s with tabs replaced by spaces.
func ExpandTabs(s string, tabWidth int) []rune {
	result := make([]rune, 0, len(s))
	col := 0
	for _, r := range s {
		if r == '\t' {
			next := NextTabStop(col, tabWidth)
			for ; col < next; col++ {
				result = append(result, ' ')
			}
			continue
		}
		result = append(result, r)
		col += uniseg.StringWidth(string(r))
	}
	return result
}
