package rangeslider

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
	touch  bool
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS), appending
// interactable nodes to buf. Skips Visible=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle all mouse and touch
// input. A queued synthetic event replaces device input for the frame.
func (s *Scene) processInput() {
	s.refreshTransforms()
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, processPointer keeps the stored button
	// so it cannot change mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button, false)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, true)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer sample.
// Screen and world coordinates coincide; scrolling moves the root node.
func (s *Scene) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton, touch bool) {
	ps := &s.pointers[pointerID]
	s.seq++

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.touch = touch
		ps.lastX = x
		ps.lastY = y
		s.dispatchPointer(EventPointerDown, pointerID, x, y, ps.button, touch)

	case !pressed && ps.down:
		ps.down = false
		s.dispatchPointer(EventPointerUp, pointerID, x, y, ps.button, ps.touch)
		ps.lastX = x
		ps.lastY = y

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		dy := y - ps.lastY
		prevented := s.dispatchPointer(EventPointerMove, pointerID, x, y, ps.button, ps.touch)
		ps.lastX = x
		ps.lastY = y
		if ps.touch && s.touchScroll && !prevented {
			s.scrollBy(dy)
		}

	default:
		// Hover move.
		if x != ps.lastX || y != ps.lastY {
			s.dispatchPointer(EventPointerMove, pointerID, x, y, button, touch)
			ps.lastX = x
			ps.lastY = y
		}
	}
}

// compatName returns the mouse or touch event name paired with a pointer event.
func compatName(pointerName string, touch bool) string {
	switch pointerName {
	case EventPointerDown:
		if touch {
			return EventTouchStart
		}
		return EventMouseDown
	case EventPointerMove:
		if touch {
			return EventTouchMove
		}
		return EventMouseMove
	default:
		if touch {
			return EventTouchEnd
		}
		return EventMouseUp
	}
}

// dispatchPointer fires the pointer event and its mouse/touch counterpart for
// the current sample. Returns true if any listener prevented the default.
func (s *Scene) dispatchPointer(name string, pointerID int, x, y float64, button MouseButton, touch bool) bool {
	target := s.hitTest(x, y)
	prevented := false
	for _, typ := range [2]string{name, compatName(name, touch)} {
		ev := &Event{
			Type:      typ,
			Target:    target,
			PointerID: pointerID,
			Button:    button,
			Touch:     touch,
			X:         x,
			Y:         y,
			ScreenX:   x,
			ScreenY:   y,
			Seq:       s.seq,
		}
		s.listeners.dispatch(ev)
		if ev.defaultPrevented {
			prevented = true
		}
	}
	return prevented
}

// scrollBy applies the default touch-scroll action by moving the root.
func (s *Scene) scrollBy(dy float64) {
	s.scrollY += dy
	s.root.Y += dy
	s.root.MarkDirty()
}
