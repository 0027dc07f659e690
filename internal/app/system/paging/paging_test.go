package paging

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/storemap/internal/testutil"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name  string
		param string
		want  int
	}{
		{"absent defaults to 1", "", 1},
		{"valid page", "3", 3},
		{"zero defaults to 1", "0", 1},
		{"negative defaults to 1", "-2", 1},
		{"garbage defaults to 1", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/stores/page/x", nil)
			if tt.param != "" {
				r = testutil.WithChiURLParam(r, "page", tt.param)
			}
			if got := ParsePage(r); got != tt.want {
				t.Errorf("ParsePage(page=%q) = %d, want %d", tt.param, got, tt.want)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		page int
		want int64
	}{
		{1, 0},
		{2, 4},
		{5, 16},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := Skip(tt.page); got != tt.want {
			t.Errorf("Skip(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestMeta_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		count    int64
		pages    int
		outRange bool
		last     int
	}{
		{"first page of empty set is never out of range", 1, 0, 0, false, 1},
		{"second page of empty set is out of range", 2, 0, 0, true, 1},
		{"exact last page", 3, 12, 3, false, 3},
		{"one past the last page", 4, 12, 3, true, 3},
		{"far past the last page", 99, 9, 3, true, 3},
		{"partial last page", 3, 9, 3, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeta(tt.page, tt.count)
			if m.Pages != tt.pages {
				t.Errorf("NewMeta(%d, %d).Pages = %d, want %d", tt.page, tt.count, m.Pages, tt.pages)
			}
			if m.OutOfRange() != tt.outRange {
				t.Errorf("OutOfRange() = %v, want %v", m.OutOfRange(), tt.outRange)
			}
			if m.LastPage() != tt.last {
				t.Errorf("LastPage() = %d, want %d", m.LastPage(), tt.last)
			}
		})
	}
}

func TestMeta_Navigation(t *testing.T) {
	m := NewMeta(2, 12) // 3 pages
	if !m.HasPrev() || !m.HasNext() {
		t.Error("middle page should have both prev and next")
	}
	if m.Prev() != 1 || m.Next() != 3 {
		t.Errorf("Prev/Next = %d/%d, want 1/3", m.Prev(), m.Next())
	}

	first := NewMeta(1, 12)
	if first.HasPrev() || first.Prev() != 1 {
		t.Error("first page should clamp Prev to 1")
	}

	last := NewMeta(3, 12)
	if last.HasNext() || last.Next() != 3 {
		t.Error("last page should clamp Next to the last page")
	}
}
