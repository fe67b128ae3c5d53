package views

import "testing"

func TestPaginator_WindowFollowsCursor(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(10)

	for i := 0; i < 4; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 4 {
		t.Fatalf("expected cursor 4, got %d", p.Cursor())
	}
	if start, end := p.VisibleRange(); start != 2 || end != 5 {
		t.Errorf("expected range [2,5), got [%d,%d)", start, end)
	}

	p.SetCursor(0)
	if start, end := p.VisibleRange(); start != 0 || end != 3 {
		t.Errorf("expected range [0,3), got [%d,%d)", start, end)
	}
}

func TestPaginator_Bounds(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(2)

	if p.CursorUp() {
		t.Error("cursor moved above the first row")
	}
	p.CursorDown()
	if p.CursorDown() {
		t.Error("cursor moved below the last row")
	}

	p.PageDown()
	if p.Cursor() != 1 {
		t.Errorf("expected PageDown to stop at 1, got %d", p.Cursor())
	}
	p.PageUp()
	if p.Cursor() != 0 {
		t.Errorf("expected PageUp to stop at 0, got %d", p.Cursor())
	}
}

func TestPaginator_ShrinkClampsCursor(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(10)
	p.SetCursor(9)

	p.SetTotal(4)
	if p.Cursor() != 3 {
		t.Errorf("expected cursor 3, got %d", p.Cursor())
	}
	if start, end := p.VisibleRange(); start > p.Cursor() || end <= p.Cursor() {
		t.Errorf("cursor %d outside range [%d,%d)", p.Cursor(), start, end)
	}

	p.SetTotal(0)
	if p.Cursor() != 0 {
		t.Errorf("expected cursor 0 for empty list, got %d", p.Cursor())
	}
}

func TestPaginator_DefaultPageSize(t *testing.T) {
	p := NewPaginator(0)
	p.SetTotal(25)
	if _, end := p.VisibleRange(); end != 10 {
		t.Errorf("expected 10 visible rows, got %d", end)
	}
}
