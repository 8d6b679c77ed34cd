package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.cells[0] != brailleBase|0x1 {
		t.Errorf("expected top-left dot, got %#x", c.cells[0])
	}

	c.Set(1, 3)
	if c.cells[0]&0x80 == 0 {
		t.Errorf("expected bottom-right dot in first cell, got %#x", c.cells[0])
	}

	// Out of range is a no-op.
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Set(3, 7)

	c.Clear()

	for i, cell := range c.cells {
		if cell != brailleBase {
			t.Errorf("cell %d not cleared: %#x", i, cell)
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 0)

	for x := 0; x < 20; x++ {
		col := x / 2
		if c.cells[col]&dotMasks[0][x%2] == 0 {
			t.Errorf("missing dot at x=%d", x)
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}
