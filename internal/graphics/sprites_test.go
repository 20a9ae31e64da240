package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWallTexture_SizeAndCache(t *testing.T) {
	sm := NewSpriteManager("", 64)
	tex := sm.WallTexture(1)
	if tex == nil {
		t.Fatal("expected a texture for material 1")
	}
	if b := tex.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("texture bounds = %v, want 64x64", b)
	}
	if sm.WallTexture(1) != tex {
		t.Error("texture should be cached")
	}
	if sm.WallTexture(0) != nil {
		t.Error("open floor has no texture")
	}
}

func TestWallTexture_MaterialsDiffer(t *testing.T) {
	a := WallTexture(1, 32)
	b := WallTexture(2, 32)
	if a.RGBAAt(10, 10) == b.RGBAAt(10, 10) {
		t.Error("different materials should be tinted differently")
	}
}

func TestFrames_Procedural(t *testing.T) {
	sm := NewSpriteManager("", 64)
	tests := []struct {
		set  string
		want int
	}{
		{AnimIdle, 2},
		{AnimWalk, 4},
		{AnimAttack, 2},
		{AnimPain, 1},
		{AnimDeath, 5},
	}
	for _, tt := range tests {
		t.Run(tt.set, func(t *testing.T) {
			if got := len(sm.Frames("trooper", tt.set)); got != tt.want {
				t.Errorf("frames = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetSprite_LoadsFromDisk(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "sprites", "static")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 3, 5))
	img.SetRGBA(1, 1, color.RGBA{1, 2, 3, 255})
	f, err := os.Create(filepath.Join(dir, "barrel.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	sm := NewSpriteManager(root, 64)
	got := sm.GetSprite("barrel")
	if b := got.Bounds(); b.Dx() != 3 || b.Dy() != 5 {
		t.Errorf("loaded sprite bounds = %v, want 3x5", b)
	}

	// Missing files fall back to a generated placeholder.
	if sm.GetSprite("plant").Bounds().Empty() {
		t.Error("placeholder should not be empty")
	}
}

func TestWeaponFrames(t *testing.T) {
	sm := NewSpriteManager("", 64)
	frames := sm.WeaponFrames(6)
	if len(frames) != 6 {
		t.Fatalf("got %d weapon frames", len(frames))
	}
	if len(ToRender(frames)) != 6 {
		t.Error("ToRender should keep every frame")
	}
}

func TestPropFrames_Pulse(t *testing.T) {
	sm := NewSpriteManager("", 64)
	frames := sm.PropFrames("lamp", 4)
	if len(frames) != 4 {
		t.Fatalf("got %d prop frames", len(frames))
	}
	if again := sm.PropFrames("lamp", 4); &again[0] != &frames[0] {
		t.Error("prop frames should be cached")
	}

	// the lamp globe is at (32, 16)
	first := frames[0].(*image.RGBA).RGBAAt(32, 16)
	second := frames[1].(*image.RGBA).RGBAAt(32, 16)
	if first == second {
		t.Errorf("glow should change between frames, both %v", first)
	}
}

func TestSky_GeneratedAndCached(t *testing.T) {
	sm := NewSpriteManager("", 32)
	base := color.RGBA{12, 14, 40, 255}
	sky := sm.Sky(160, 50, base)
	if b := sky.Bounds(); b.Dx() != 160 || b.Dy() != 50 {
		t.Fatalf("sky bounds = %v", b)
	}
	if sm.Sky(320, 100, base) != sky {
		t.Error("sky should be cached")
	}

	img := SkyTexture(160, 50, base)
	top, horizon := img.RGBAAt(1, 0), img.RGBAAt(1, 49)
	if int(horizon.B) <= int(top.B) && top != (color.RGBA{230, 230, 250, 255}) {
		t.Errorf("sky should brighten toward the horizon: top %v horizon %v", top, horizon)
	}
}
