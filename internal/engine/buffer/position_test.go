package buffer

import (
	"errors"
	"testing"
)

func TestPositionFollowsEdits(t *testing.T) {
	tests := []struct {
		name  string
		start ByteOffset
		bias  Bias
		edit  func(*Buffer) error
		want  ByteOffset
	}{
		{
			name:  "insert before",
			start: 4,
			edit:  func(b *Buffer) error { _, err := b.Insert(0, "xx"); return err },
			want:  6,
		},
		{
			name:  "insert after",
			start: 4,
			edit:  func(b *Buffer) error { _, err := b.Insert(6, "xx"); return err },
			want:  4,
		},
		{
			name:  "insert at forward",
			start: 4,
			edit:  func(b *Buffer) error { _, err := b.Insert(4, "xx"); return err },
			want:  6,
		},
		{
			name:  "insert at backward",
			start: 4,
			bias:  BiasBackward,
			edit:  func(b *Buffer) error { _, err := b.Insert(4, "xx"); return err },
			want:  4,
		},
		{
			name:  "delete before",
			start: 4,
			edit:  func(b *Buffer) error { return b.Delete(0, 2) },
			want:  2,
		},
		{
			name:  "delete spanning",
			start: 4,
			edit:  func(b *Buffer) error { return b.Delete(2, 6) },
			want:  2,
		},
		{
			name:  "delete ending at position",
			start: 4,
			edit:  func(b *Buffer) error { return b.Delete(1, 4) },
			want:  1,
		},
		{
			name:  "replace spanning forward",
			start: 4,
			edit:  func(b *Buffer) error { _, err := b.Replace(2, 6, "abc"); return err },
			want:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString("one\ntwo\nthree")
			p, err := b.CreatePositionWithBias(tt.start, tt.bias)
			if err != nil {
				t.Fatal(err)
			}
			if err := tt.edit(b); err != nil {
				t.Fatal(err)
			}
			if got := p.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPositionReplaysManyEdits(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")
	p, err := b.CreatePosition(4)
	if err != nil {
		t.Fatal(err)
	}

	// Read between some edits and not others.
	for i := 0; i < 10; i++ {
		if _, err := b.Insert(0, "x\n"); err != nil {
			t.Fatal(err)
		}
		if i%3 == 0 {
			p.Offset()
		}
	}
	if got := p.Offset(); got != 24 {
		t.Errorf("Offset() = %d, want 24", got)
	}
	line, err := b.LineOfOffset(p.Offset())
	if err != nil {
		t.Fatal(err)
	}
	if line != 11 {
		t.Errorf("expected position on line 11, got %d", line)
	}
}

func TestPositionSurvivesCompaction(t *testing.T) {
	b := NewBufferFromString("abc", WithMaxEditLog(2))
	p, err := b.CreatePosition(3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 7; i++ {
		if _, err := b.Insert(0, "-"); err != nil {
			t.Fatal(err)
		}
	}
	if got := p.Offset(); got != 10 {
		t.Errorf("Offset() = %d, want 10", got)
	}
}

func TestPositionRelease(t *testing.T) {
	b := NewBufferFromString("abc")
	p, err := b.CreatePosition(1)
	if err != nil {
		t.Fatal(err)
	}
	if b.PositionCount() != 1 {
		t.Fatalf("expected 1 live position, got %d", b.PositionCount())
	}
	p.Release()
	p.Release()
	if b.PositionCount() != 0 {
		t.Errorf("expected 0 live positions, got %d", b.PositionCount())
	}
	if _, err := b.Insert(0, "zz"); err != nil {
		t.Fatal(err)
	}
	if got := p.Offset(); got != 1 {
		t.Errorf("released position moved to %d", got)
	}
}

func TestCreatePositionOutOfRange(t *testing.T) {
	b := NewBufferFromString("abc")
	if _, err := b.CreatePosition(3); err != nil {
		t.Errorf("offset equal to length should be valid: %v", err)
	}
	if _, err := b.CreatePosition(4); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
}
