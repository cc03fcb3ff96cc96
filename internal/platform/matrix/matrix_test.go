package matrix

import (
	"strings"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/meteors"
)

var (
	_ meteors.Display = (*Display)(nil)
	_ meteors.Buttons = (*Pad)(nil)
)

func TestDisplayPlotUnplot(t *testing.T) {
	d := New(5, 5)

	d.Plot(1, 2)
	if !d.PointIsLit(1, 2) {
		t.Error("(1,2) should be lit after Plot")
	}

	d.Plot(1, 2)
	d.Unplot(1, 2)
	if d.PointIsLit(1, 2) {
		t.Error("(1,2) should be dark after Unplot")
	}

	d.Unplot(1, 2)
	if d.PointIsLit(1, 2) {
		t.Error("Unplot should be idempotent")
	}
}

func TestDisplayIgnoresOffBoard(t *testing.T) {
	d := New(5, 5)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		d.Plot(p[0], p[1])
		if d.PointIsLit(p[0], p[1]) {
			t.Errorf("off-board (%d,%d) should never be lit", p[0], p[1])
		}
		d.Unplot(p[0], p[1])
	}

	f := d.Snapshot()
	for i, lit := range f.Lit {
		if lit {
			t.Errorf("pixel %d lit by an off-board Plot", i)
		}
	}
}

func TestDisplayClearAndNumber(t *testing.T) {
	d := New(5, 5)
	d.Plot(0, 0)
	d.SetAmbientColor(core.ColorRed)
	d.ShowNumber(12)

	f := d.Snapshot()
	if !f.ShowingNumber || f.Number != 12 {
		t.Errorf("Snapshot() number = %v/%d, expected shown 12", f.ShowingNumber, f.Number)
	}

	d.ClearScreen()
	f = d.Snapshot()
	if f.ShowingNumber {
		t.Error("ClearScreen should hide the number")
	}
	if f.IsLit(0, 0) {
		t.Error("ClearScreen should turn pixels off")
	}
	if f.Ambient != core.ColorRed {
		t.Errorf("ClearScreen should keep the ambient light, got %v", f.Ambient)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	d := New(3, 3)
	f := d.Snapshot()
	d.Plot(1, 1)

	if f.IsLit(1, 1) {
		t.Error("snapshot should not see later changes")
	}
	if f.IsLit(-1, 0) || f.IsLit(3, 3) {
		t.Error("Frame.IsLit should be false off-board")
	}
}

func TestDisplayConcurrentUse(t *testing.T) {
	d := New(5, 5)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				d.Plot(i%5, g)
				d.PointIsLit(i%5, g)
				d.Unplot(i%5, g)
				d.Snapshot()
			}
		}()
	}
	wg.Wait()
}

func TestPadPress(t *testing.T) {
	p := NewPad()
	var order []string
	p.OnButtonPressed(core.ButtonLeft, func() { order = append(order, "left-1") })
	p.OnButtonPressed(core.ButtonLeft, func() { order = append(order, "left-2") })
	p.OnButtonPressed(core.ButtonRight, func() { order = append(order, "right") })

	if n := p.Press(core.ButtonLeft); n != 2 {
		t.Errorf("Press(Left) ran %d handlers, expected 2", n)
	}
	if strings.Join(order, ",") != "left-1,left-2" {
		t.Errorf("handlers ran as %v", order)
	}

	if n := NewPad().Press(core.ButtonRight); n != 0 {
		t.Errorf("Press on an empty pad ran %d handlers", n)
	}
}

func TestDrawPixels(t *testing.T) {
	d := New(5, 5)
	d.Plot(0, 0)
	d.Plot(2, 4)

	w, h := BoardSize(5, 5)
	if w != 14 || h != 7 {
		t.Fatalf("BoardSize(5, 5) = %d, %d; expected 14, 7", w, h)
	}
	s := core.NewScreen(w, h)
	Draw(d.Snapshot(), s, 0, 0)

	if s.Get(0, 0) != '┌' || s.GetCell(0, 0).Color != FrameColor {
		t.Errorf("box corner = %+v, expected gray '┌'", s.GetCell(0, 0))
	}
	if c := s.GetCell(2, 1); c.Rune != LitChar || c.Color != LitColor {
		t.Errorf("pixel (0,0) drawn as %+v", c)
	}
	if c := s.GetCell(3, 1); c.Rune != LitChar {
		t.Errorf("lit pixels are two columns wide, got %+v", c)
	}
	if c := s.GetCell(2+2*2, 5); c.Rune != LitChar {
		t.Errorf("pixel (2,4) drawn as %+v", c)
	}
	if c := s.GetCell(4, 1); c.Rune != UnlitChar {
		t.Errorf("pixel (1,0) should be unlit, got %+v", c)
	}
}

func TestDrawAmbientAndNumber(t *testing.T) {
	d := New(5, 5)
	d.Plot(1, 1)
	d.SetAmbientColor(core.ColorViolet)
	d.ShowNumber(42)

	w, h := BoardSize(5, 5)
	s := core.NewScreen(w, h)
	Draw(d.Snapshot(), s, 0, 0)

	if s.GetCell(0, 0).Color != core.ColorViolet {
		t.Errorf("box should take the ambient color, got %v", s.GetCell(0, 0).Color)
	}
	if !strings.Contains(s.Row(h/2), "42") {
		t.Errorf("middle row %q should show the number", s.Row(h/2))
	}
	if strings.ContainsRune(s.String(), LitChar) {
		t.Error("number overlay should hide the pixels")
	}
}
