package tui

import "testing"

func TestLangStyleKnownAndUnknown(t *testing.T) {
	th := newTheme(true)
	goStyle := th.langStyle("Go")
	unknown := th.langStyle("Brainfuck")

	if goStyle.GetForeground() == unknown.GetForeground() {
		t.Error("known language should not use the dim fallback color")
	}
	if unknown.GetForeground() != th.dim.GetForeground() {
		t.Error("unknown language should fall back to the dim style")
	}
}

func TestCursorRowCombinesHighlightAndSelection(t *testing.T) {
	for _, dark := range []bool{true, false} {
		th := newTheme(dark)
		row := th.cursorRow()
		if row.GetBackground() != th.selectedRowBg.GetBackground() {
			t.Errorf("dark=%v: cursor row lost the highlight background", dark)
		}
		if row.GetForeground() != th.selected.GetForeground() {
			t.Errorf("dark=%v: cursor row lost the selected foreground", dark)
		}
		if !row.GetBold() {
			t.Errorf("dark=%v: cursor row lost bold", dark)
		}
	}
}

func TestThemePalettesDiffer(t *testing.T) {
	dark := newTheme(true)
	light := newTheme(false)
	if !dark.dark || light.dark {
		t.Fatal("theme dark flag not carried")
	}
	if dark.normal.GetForeground() == light.normal.GetForeground() {
		t.Error("dark and light palettes should use different text colors")
	}
}
