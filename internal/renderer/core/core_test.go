package core

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 4), NewRect(2, 3, 4, 4)},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(5, 5, 1, 1), Rect{X: 5, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 20, 100)
	if !r.Contains(Point{X: 0, Y: 0}) {
		t.Error("expected top-left corner inside")
	}
	if r.Contains(Point{X: 20, Y: 5}) {
		t.Error("right edge is exclusive")
	}
	if r.Bottom() != 100 || r.Right() != 20 {
		t.Errorf("unexpected edges %d %d", r.Bottom(), r.Right())
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff8000", ColorFromRGB(255, 128, 0), false},
		{"ff8000", ColorFromRGB(255, 128, 0), false},
		{"#fff", ColorWhite, false},
		{"", ColorDefault, false},
		{"default", ColorDefault, false},
		{"#zzzzzz", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ColorFromHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorBlend(t *testing.T) {
	if got := ColorRed.Blend(ColorBlue, 0); !near(got, ColorRed) {
		t.Errorf("blend 0 = %v, want red", got)
	}
	if got := ColorRed.Blend(ColorBlue, 1); !near(got, ColorBlue) {
		t.Errorf("blend 1 = %v, want blue", got)
	}
	if got := ColorDefault.Lighten(0.5); !got.IsDefault() {
		t.Errorf("default color should be unchanged, got %v", got)
	}
	if got := ColorGray.Lighten(0.5); got.R <= ColorGray.R {
		t.Errorf("lighten should raise channels, got %v", got)
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'\t', 0},
		{'世', 2},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func near(a, b Color) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2
}
