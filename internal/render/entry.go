package render

import (
	"image"
	"sort"
)

// Image is the opaque drawable carried by a render entry. Both image.Image
// and *ebiten.Image satisfy it.
type Image interface {
	Bounds() image.Rectangle
}

// Rect is a destination rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Entry is one depth-tagged blit: a wall strip or a billboard.
type Entry struct {
	Depth float64
	Image Image
	// Src is the region of Image to draw. The zero rectangle means all of it.
	Src image.Rectangle
	Dst Rect
}

// Source returns the effective source rectangle in image coordinates.
func (e Entry) Source() image.Rectangle {
	if e.Src.Empty() {
		return e.Image.Bounds()
	}
	return e.Src
}

// List collects one frame's entries. It is rebuilt from scratch every frame.
type List struct {
	entries []Entry
}

// Reset empties the list, keeping its storage.
func (l *List) Reset() {
	l.entries = l.entries[:0]
}

// Add appends an entry.
func (l *List) Add(e Entry) {
	l.entries = append(l.entries, e)
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Sorted sorts the list back to front and returns it. The slice is owned by
// the list and valid until the next Reset.
func (l *List) Sorted() []Entry {
	SortBackToFront(l.entries)
	return l.entries
}

// SortBackToFront orders entries by descending depth. Equal depths keep
// their insertion order, so walls added first stay behind sprites at the
// same distance.
func SortBackToFront(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Depth > entries[j].Depth
	})
}
