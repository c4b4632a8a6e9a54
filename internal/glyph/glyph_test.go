package glyph

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestModeSize(t *testing.T) {
	tests := []struct {
		mode   Mode
		width  int
		height int
	}{
		{Quadrant, 4, 4},
		{HalfBlock, 8, 4},
		{Full, 8, 8},
	}

	for _, tt := range tests {
		if tt.mode.Width() != tt.width || tt.mode.Height() != tt.height {
			t.Errorf("mode %d = %dx%d, want %dx%d", tt.mode, tt.mode.Width(), tt.mode.Height(), tt.width, tt.height)
		}
	}
}

func TestRender_Dimensions(t *testing.T) {
	r := New()

	for _, mode := range []Mode{Quadrant, HalfBlock, Full} {
		for _, text := range []string{"A", "Hello", "héllo wörld", ""} {
			rows := r.Render(text, mode)
			if len(rows) != mode.Height() {
				t.Errorf("mode %d %q: %d rows, want %d", mode, text, len(rows), mode.Height())
				continue
			}
			want := utf8.RuneCountInString(text) * mode.Width()
			for i, row := range rows {
				if n := utf8.RuneCountInString(row); n != want {
					t.Errorf("mode %d %q row %d: %d columns, want %d", mode, text, i, n, want)
				}
			}
		}
	}
}

func TestRender_SpaceIsBlank(t *testing.T) {
	r := New()

	for _, mode := range []Mode{Quadrant, HalfBlock, Full} {
		for _, row := range r.Render("  ", mode) {
			if strings.TrimSpace(row) != "" {
				t.Errorf("mode %d: space rendered %q", mode, row)
			}
		}
	}
}

func TestRender_LettersHaveInk(t *testing.T) {
	r := New()

	for _, mode := range []Mode{Quadrant, HalfBlock, Full} {
		ink := 0
		for _, row := range r.Render("W", mode) {
			ink += len(strings.TrimSpace(row))
		}
		if ink == 0 {
			t.Errorf("mode %d: W rendered blank", mode)
		}
	}
}

func TestRender_UsesOnlyBlockElements(t *testing.T) {
	allowed := string(halfBlocks[:]) + string(quadrants[:])
	r := New()

	for _, mode := range []Mode{Quadrant, HalfBlock, Full} {
		for _, row := range r.Render("Teleprompter 42!", mode) {
			for _, ch := range row {
				if !strings.ContainsRune(allowed, ch) {
					t.Fatalf("mode %d: unexpected rune %q", mode, ch)
				}
			}
		}
	}
}

func TestRender_Cached(t *testing.T) {
	r := New()

	first := r.Render("cache", Full)
	second := r.Render("cache", Full)
	if &first[0] != &second[0] {
		t.Error("expected the cached slice to be returned")
	}
	if len(r.lines) != 1 {
		t.Errorf("cache holds %d lines, want 1", len(r.lines))
	}
}

func TestHalfBlock(t *testing.T) {
	tests := []struct {
		top, bottom bool
		want        rune
	}{
		{false, false, ' '},
		{true, false, '▀'},
		{false, true, '▄'},
		{true, true, '█'},
	}

	for _, tt := range tests {
		if got := halfBlock(tt.top, tt.bottom); got != tt.want {
			t.Errorf("halfBlock(%v, %v) = %q, want %q", tt.top, tt.bottom, got, tt.want)
		}
	}
}

func TestQuadrant(t *testing.T) {
	tests := []struct {
		tl, tr, bl, br bool
		want           rune
	}{
		{false, false, false, false, ' '},
		{true, false, false, false, '▘'},
		{false, true, false, false, '▝'},
		{false, false, true, false, '▖'},
		{false, false, false, true, '▗'},
		{true, false, true, false, '▌'},
		{false, true, false, true, '▐'},
		{true, false, false, true, '▚'},
		{false, true, true, false, '▞'},
		{true, true, true, true, '█'},
	}

	for _, tt := range tests {
		if got := quadrant(tt.tl, tt.tr, tt.bl, tt.br); got != tt.want {
			t.Errorf("quadrant(%v %v %v %v) = %q, want %q", tt.tl, tt.tr, tt.bl, tt.br, got, tt.want)
		}
	}
}

func TestWriteRow_Squashing(t *testing.T) {
	var bm bitmap
	// a single lit pixel in the top-left corner
	bm[0][0] = true

	var sb strings.Builder
	writeRow(&sb, &bm, Full, 0)
	if got := []rune(sb.String())[0]; got != '▀' {
		t.Errorf("Full row 0 = %q, want ▀", got)
	}

	sb.Reset()
	writeRow(&sb, &bm, HalfBlock, 0)
	if got := []rune(sb.String())[0]; got != '▀' {
		t.Errorf("HalfBlock row 0 = %q, want ▀", got)
	}

	sb.Reset()
	writeRow(&sb, &bm, Quadrant, 0)
	if got := []rune(sb.String())[0]; got != '▘' {
		t.Errorf("Quadrant row 0 = %q, want ▘", got)
	}

	// source row 1 halves onto the same squashed row as row 0
	bm = bitmap{}
	bm[1][1] = true
	sb.Reset()
	writeRow(&sb, &bm, Quadrant, 0)
	if got := []rune(sb.String())[0]; got != '▝' {
		t.Errorf("Quadrant row 0 = %q, want ▝", got)
	}
}
