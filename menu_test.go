// menu_test.go

package vui

import "testing"

func newTestMenu(t *testing.T) (*Menu, *MenuGroup) {
	t.Helper()
	alloc := NewAllocator(1<<20, nil)
	font := NewBuiltinFont()
	theme, err := BuildDefaultTheme(alloc, font, font)
	if err != nil {
		t.Fatalf("BuildDefaultTheme failed: %v", err)
	}
	m, err := NewMenu(alloc, 200, 200, font, theme)
	if err != nil {
		t.Fatalf("NewMenu failed: %v", err)
	}
	group := &MenuGroup{
		Title: "File",
		Items: []MenuItem{
			{ID: 1, Caption: "New", Type: MenuItemEntry},
			{ID: 2, Caption: "Open", Type: MenuItemEntry},
			{Type: MenuItemDivider},
			{ID: 3, Caption: "More", Type: MenuItemSubmenu},
		},
	}
	return m, group
}

func TestMenuOpenClampsOnScreenAndRecordsSelRects(t *testing.T) {
	m, group := newTestMenu(t)
	m.Open(group, 190, 190, 200, 200)
	if m.x < 0 || m.y < 0 {
		t.Fatalf("menu origin should be clamped non-negative, got (%d,%d)", m.x, m.y)
	}
	if m.rect.MaxX >= 200 || m.rect.MaxY >= 200 {
		t.Fatalf("menu rect should be clamped inside the 200x200 screen, got %v", m.rect)
	}
	for i, it := range group.Items {
		if it.selRect.Empty() {
			t.Fatalf("item %d should have a non-empty selRect after Open", i)
		}
	}
}

func TestMenuHandleMouseMoveTracksHighlight(t *testing.T) {
	m, group := newTestMenu(t)
	m.Open(group, 0, 0, 200, 200)
	firstRow := group.Items[0].selRect
	m.HandleMouseMove(firstRow.MinX, firstRow.MinY)
	if m.highlight != 0 {
		t.Fatalf("highlight = %d, want 0", m.highlight)
	}
	secondRow := group.Items[1].selRect
	m.HandleMouseMove(secondRow.MinX, secondRow.MinY)
	if m.highlight != 1 {
		t.Fatalf("highlight = %d, want 1 after moving to second row", m.highlight)
	}
}

func TestMenuHandleMouseMoveIgnoresDividerRow(t *testing.T) {
	m, group := newTestMenu(t)
	m.Open(group, 0, 0, 200, 200)
	dividerRow := group.Items[2].selRect
	m.HandleMouseMove(dividerRow.MinX, dividerRow.MinY)
	if m.highlight != -1 {
		t.Fatalf("hovering a divider row should not set a highlight, got %d", m.highlight)
	}
}

func TestMenuHandleClickReturnsIDAndHidesMenu(t *testing.T) {
	m, group := newTestMenu(t)
	m.Open(group, 0, 0, 200, 200)
	m.Show()
	row := group.Items[1].selRect
	id, covered := m.HandleClick(row.MinX, row.MinY)
	if id != 2 {
		t.Fatalf("HandleClick id = %d, want 2", id)
	}
	if covered.Empty() {
		t.Fatalf("covered rect should reflect the menu's occupied region")
	}
	if m.Visible() {
		t.Fatalf("menu should be hidden after a click")
	}
}

func TestMenuHandleClickOutsideAnyItemReturnsNoSelection(t *testing.T) {
	m, group := newTestMenu(t)
	m.Open(group, 0, 0, 200, 200)
	m.Show()
	id, _ := m.HandleClick(10000, 10000)
	if id != MenuIDNoSelection {
		t.Fatalf("click outside all items should return MenuIDNoSelection, got %d", id)
	}
}
