package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gridcaster/internal/config"
	"gridcaster/internal/raycast"
	"gridcaster/internal/world"
)

type textures map[world.Material]Image

func (t textures) WallTexture(m world.Material) Image { return t[m] }

func testProjection() config.Projection {
	return config.NewProjection(320, 200, 160, math.Pi/3, 20, 64)
}

func TestSortBackToFront(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 1, 1))
	entries := []Entry{
		{Depth: 2},
		{Depth: 5, Image: a},
		{Depth: 1},
		{Depth: 5, Image: b},
		{Depth: 3},
	}
	SortBackToFront(entries)

	want := []float64{5, 5, 3, 2, 1}
	for i, e := range entries {
		if e.Depth != want[i] {
			t.Fatalf("entry %d depth = %v, want %v", i, e.Depth, want[i])
		}
	}
	if entries[0].Image != a || entries[1].Image != b {
		t.Error("equal depths must keep insertion order")
	}
}

func TestList_ResetKeepsNothing(t *testing.T) {
	var l List
	l.Add(Entry{Depth: 1})
	l.Add(Entry{Depth: 2})
	if got := l.Sorted(); got[0].Depth != 2 {
		t.Errorf("first sorted depth = %v, want 2", got[0].Depth)
	}
	l.Reset()
	if l.Len() != 0 {
		t.Errorf("len after reset = %d", l.Len())
	}
}

func TestWallEntries(t *testing.T) {
	proj := testProjection()
	tex := image.NewRGBA(image.Rect(0, 0, 64, 64))
	src := textures{1: tex}

	columns := []raycast.Column{
		{Index: 0, Hit: true, Material: 1, Depth: 4, Height: 50, Offset: 0.5},
		{Index: 1},
		{Index: 2, Hit: true, Material: 1, Depth: 0.5, Height: 400, Offset: 0},
		{Index: 3, Hit: true, Material: 9, Depth: 3, Height: 60},
	}
	var l List
	WallEntries(&l, columns, src, proj)
	if l.Len() != 2 {
		t.Fatalf("expected 2 wall entries, got %d", l.Len())
	}
	entries := l.entries

	short := entries[0]
	if short.Src != image.Rect(31, 0, 33, 64) {
		t.Errorf("short strip src = %v", short.Src)
	}
	if short.Dst != (Rect{X: 0, Y: 100 - 25, W: 2, H: 50}) {
		t.Errorf("short strip dst = %+v", short.Dst)
	}

	tall := entries[1]
	// 64 * 200 / 400 = 32 texels centred on row 32.
	if tall.Src != image.Rect(0, 16, 2, 48) {
		t.Errorf("tall strip src = %v", tall.Src)
	}
	if tall.Dst != (Rect{X: 4, Y: 0, W: 2, H: 200}) {
		t.Errorf("tall strip dst = %+v", tall.Dst)
	}
	if tall.Depth != 0.5 {
		t.Errorf("tall strip depth = %v", tall.Depth)
	}
}

func TestCanvas_BlitAndClear(t *testing.T) {
	c := NewCanvas(10, 10)
	sky := color.RGBA{0, 0, 255, 255}
	floor := color.RGBA{0, 255, 0, 255}
	c.Clear(sky, floor)
	if c.Image().RGBAAt(5, 1) != sky || c.Image().RGBAAt(5, 8) != floor {
		t.Fatal("clear should paint sky on top and floor below")
	}

	red := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			red.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	c.Blit(Entry{Image: red, Dst: Rect{X: 2, Y: 2, W: 3, H: 3}})
	if c.Image().RGBAAt(3, 3) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel inside blit = %v", c.Image().RGBAAt(3, 3))
	}
	if c.Image().RGBAAt(8, 8) != floor {
		t.Error("pixel outside blit changed")
	}

	// Off-screen and foreign images are ignored.
	c.Blit(Entry{Image: red, Dst: Rect{X: 50, Y: 50, W: 3, H: 3}})
	c.Blit(Entry{Image: foreign{}, Dst: Rect{W: 10, H: 10}})
}

type foreign struct{}

func (foreign) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }

func TestCompose_Order(t *testing.T) {
	var r recorder
	Compose(&r, []Entry{{Depth: 3}, {Depth: 1}})
	if len(r) != 2 || r[0].Depth != 3 {
		t.Errorf("compose order = %+v", r)
	}
}

type recorder []Entry

func (r *recorder) Blit(e Entry) { *r = append(*r, e) }
