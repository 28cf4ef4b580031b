// control_test.go

package vui

import "testing"

func TestControlAlignToWindowLeftRightCenter(t *testing.T) {
	parent := NewRect(0, 0, 99, 19)
	cases := []struct {
		name          string
		halign        HAlign
		xoff          int
		width         int
		wantMinX      int
	}{
		{"left", HAlignLeft, 5, 10, 5},
		{"right", HAlignRight, 5, 10, 99 - 5 - 10 + 1},
		{"center", HAlignCenter, 0, 10, (100 - 10) / 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tmpl := &ControlTemplate{HAlign: c.halign, VAlign: VAlignTop, XOffset: c.xoff, Width: c.width, Height: 10}
			ctrl := NewControlFromTemplate(1, tmpl)
			ctrl.AlignToWindow(parent)
			if ctrl.rect.MinX != c.wantMinX {
				t.Fatalf("rect.MinX = %d, want %d", ctrl.rect.MinX, c.wantMinX)
			}
			if !parent.ContainsRect(ctrl.rect) {
				t.Fatalf("aligned rect %v must be fully inside parent %v", ctrl.rect, parent)
			}
		})
	}
}

func TestIsRighterIsLefterUpdateRunningValue(t *testing.T) {
	tmpl := &ControlTemplate{HAlign: HAlignLeft, VAlign: VAlignTop, Width: 10, Height: 10}
	ctrl := NewControlFromTemplate(1, tmpl)
	ctrl.AlignToWindow(NewRect(0, 0, 99, 99))

	xMax := -1000
	if !ctrl.IsRighter(&xMax) {
		t.Fatalf("expected IsRighter to report an update")
	}
	if xMax != ctrl.rect.MaxX {
		t.Fatalf("xMax = %d, want %d", xMax, ctrl.rect.MaxX)
	}
	if ctrl.IsRighter(&xMax) {
		t.Fatalf("second call with same value should not report an update")
	}

	xMin := 1000
	if !ctrl.IsLefter(&xMin) {
		t.Fatalf("expected IsLefter to report an update")
	}
	if xMin != ctrl.rect.MinX {
		t.Fatalf("xMin = %d, want %d", xMin, ctrl.rect.MinX)
	}
}

func TestControlSetActiveSetPressedAreFlagsOnly(t *testing.T) {
	tmpl := &ControlTemplate{Width: 10, Height: 10}
	ctrl := NewControlFromTemplate(1, tmpl)
	ctrl.SetActive(true)
	ctrl.SetPressed(true)
	if !ctrl.active || !ctrl.pressed {
		t.Fatalf("SetActive/SetPressed did not set flags")
	}
}

func TestControlRenderForeColorByActivePressedState(t *testing.T) {
	alloc := NewAllocator(1<<20, nil)
	font := NewBuiltinFont()
	theme, err := BuildDefaultTheme(alloc, font, font)
	if err != nil {
		t.Fatalf("BuildDefaultTheme failed: %v", err)
	}
	winBitmap, _ := NewBitmap(alloc, 40, 20, nil, PoolNormal)

	cases := []struct {
		name            string
		active, pressed bool
		want            byte
	}{
		{"active-not-pressed", true, false, theme.StandardFore},
		{"active-pressed", true, true, theme.StandardBack},
		{"inactive-pressed", false, true, theme.HighlightFore},
		{"inactive-not-pressed", false, false, theme.InactiveFore},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tmpl := &ControlTemplate{Width: 20, Height: 14, Caption: "x", AvailTextWidth: 16}
			ctrl := NewControlFromTemplate(1, tmpl)
			ctrl.AlignToWindow(NewRect(0, 0, 39, 19))
			ctrl.SetActive(c.active)
			ctrl.SetPressed(c.pressed)
			winBitmap.FillMemory(0)
			ctrl.Render(theme, winBitmap)
			if winBitmap.color != c.want {
				t.Fatalf("fore color = %d, want %d", winBitmap.color, c.want)
			}
		})
	}
}

func TestControlRenderInvisibleProducesNoBlit(t *testing.T) {
	alloc := NewAllocator(1<<20, nil)
	art, _ := NewBitmap(alloc, 10, 10, nil, PoolNormal)
	art.FillMemory(5)
	tmpl := &ControlTemplate{Width: 10, Height: 10, Art: [2][2]*Bitmap{{art, art}, {art, art}}}
	ctrl := NewControlFromTemplate(1, tmpl)
	ctrl.AlignToWindow(NewRect(0, 0, 19, 19))
	ctrl.SetVisible(false)

	winBitmap, _ := NewBitmap(alloc, 20, 20, nil, PoolNormal)
	theme := &Theme{}
	ctrl.Render(theme, winBitmap)
	if v, _ := winBitmap.GetPixel(0, 0); v != 0 {
		t.Fatalf("invisible control should not render, got pixel %d", v)
	}
}
