// Package keytracker reports key presses edge-triggered for Ebiten v2.8.8.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	return k.Observe(ebiten.IsKeyPressed(key))
}

// Observe records the current pressed state and reports a rising edge.
func (k *KeyStateTracker) Observe(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// Set tracks several keys at once.
type Set struct {
	keys map[ebiten.Key]*KeyStateTracker
}

// NewSet creates a tracker for keys.
func NewSet(keys ...ebiten.Key) *Set {
	s := &Set{keys: make(map[ebiten.Key]*KeyStateTracker, len(keys))}
	for _, k := range keys {
		s.keys[k] = &KeyStateTracker{}
	}
	return s
}

// JustPressed reports a rising edge for key, adding it to the set on
// first use.
func (s *Set) JustPressed(key ebiten.Key) bool {
	k, ok := s.keys[key]
	if !ok {
		k = &KeyStateTracker{}
		s.keys[key] = k
	}
	return k.IsKeyJustPressed(key)
}
