package pagination

import (
	"math"
	"testing"

	"clinical-records-api/internal/platform/apperr"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 9, 0},
		{1, 9, 1},
		{9, 9, 1},
		{10, 9, 2},
		{18, 9, 2},
		{19, 9, 3},
		{27, 9, 3},
		{28, 9, 4},
		{5, 0, 0},
	}

	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestNew_RejectsPagesBelowOne(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := New(n)
		if err == nil {
			t.Fatalf("expected validation error for page %d", n)
		}
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("expected validation kind, got %v", apperr.KindOf(err))
		}
		if err.Error() != "validation: page must be 1 or greater" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	}
}

func TestPage_Window(t *testing.T) {
	p, err := New(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Offset() != 18 || p.Limit() != 9 {
		t.Fatalf("expected offset 18 limit 9, got %d %d", p.Offset(), p.Limit())
	}

	meta := NewMeta(p, 19)
	if meta.TotalPages != 3 || meta.TotalCount != 19 || meta.Page != 3 || meta.PageSize != 9 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestPage_OffsetSaturates(t *testing.T) {
	p, err := New(1<<60 + 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Offset() != math.MaxInt {
		t.Fatalf("expected saturated offset, got %d", p.Offset())
	}

	p, _ = New(1)
	if p.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", p.Offset())
	}
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"2":   2,
		" 7 ": 7,
		"abc": 1,
		"0":   0,
		"-3":  -3,
	}
	for raw, want := range cases {
		if got := ParsePage(raw); got != want {
			t.Errorf("ParsePage(%q) = %d, want %d", raw, got, want)
		}
	}
}
