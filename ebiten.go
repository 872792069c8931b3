package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// inputReader is the slice of ebiten's input API TouchSource polls.
type inputReader interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	CursorPosition() (int, int)
	MouseLeftPressed() bool
}

type ebitenInput struct{}

func (ebitenInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenInput) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) MouseLeftPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

type slotState struct {
	down         bool
	lastX, lastY float64
}

// TouchSource polls ebiten's touch and mouse state once per frame and turns
// changes into pointer events on a Surface. Touches use pointer ids 1-9; the
// left mouse button emulates a single touch as pointer 0 and is ignored
// while any touch is down.
//
// Call Update from ebiten.Game.Update. It also ticks the surface clock when
// that clock is a FrameClock, so long-press timers fire on the game loop.
type TouchSource struct {
	surface *Surface
	input   inputReader

	// OffsetX and OffsetY are subtracted from screen coordinates before
	// dispatch, putting events in the surface's local space.
	OffsetX, OffsetY float64

	slots        [maxPointers]slotState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// NewTouchSource returns a TouchSource feeding s from ebiten input.
func NewTouchSource(s *Surface) *TouchSource {
	return newTouchSource(s, ebitenInput{})
}

func newTouchSource(s *Surface, in inputReader) *TouchSource {
	return &TouchSource{surface: s, input: in}
}

// Update polls input, dispatches the resulting pointer events and fires due
// timers.
func (ts *TouchSource) Update() {
	touching := ts.processTouches()
	ts.processMouse(touching)
	if fc, ok := ts.surface.Clock().(*FrameClock); ok {
		fc.Tick()
	}
}

// processTouches handles touch input (pointers 1-9) and reports whether any
// touch is down.
func (ts *TouchSource) processTouches() bool {
	touchIDs := ts.input.AppendTouchIDs(ts.prevTouchIDs[:0])
	ts.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := ts.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ts.input.TouchPosition(tid)
		ts.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if ts.touchUsed[i] && !activeSlots[i] {
			st := &ts.slots[i]
			if st.down {
				ts.processPointer(i, st.lastX+ts.OffsetX, st.lastY+ts.OffsetY, false)
			}
			ts.touchUsed[i] = false
			ts.touchMap[i] = 0
		}
	}
	return len(touchIDs) > 0
}

func (ts *TouchSource) processMouse(touching bool) {
	mx, my := ts.input.CursorPosition()
	pressed := ts.input.MouseLeftPressed() && !touching
	if !pressed && !ts.slots[0].down {
		return
	}
	ts.processPointer(0, float64(mx), float64(my), pressed)
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (ts *TouchSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if ts.touchUsed[i] && ts.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !ts.touchUsed[i] {
			ts.touchUsed[i] = true
			ts.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release diff for a single slot.
func (ts *TouchSource) processPointer(slot int, sx, sy float64, pressed bool) {
	st := &ts.slots[slot]
	x, y := sx-ts.OffsetX, sy-ts.OffsetY
	id := PointerID(slot)

	switch {
	case pressed && !st.down:
		st.down = true
		st.lastX, st.lastY = x, y
		ts.surface.Dispatch(PointerEvent{Type: PointerDown, ID: id, X: x, Y: y})
	case !pressed && st.down:
		st.down = false
		ts.surface.Dispatch(PointerEvent{Type: PointerUp, ID: id, X: x, Y: y})
	case pressed && st.down:
		if x != st.lastX || y != st.lastY {
			st.lastX, st.lastY = x, y
			ts.surface.Dispatch(PointerEvent{Type: PointerMove, ID: id, X: x, Y: y})
		}
	}
}

// Cancel dispatches PointerCancel for every contact that is down and forgets
// them, for example when the game loses focus.
func (ts *TouchSource) Cancel() {
	for i := range ts.slots {
		if ts.slots[i].down {
			ts.slots[i].down = false
			ts.surface.Dispatch(PointerEvent{Type: PointerCancel, ID: PointerID(i)})
		}
	}
	for i := 1; i < maxPointers; i++ {
		ts.touchUsed[i] = false
		ts.touchMap[i] = 0
	}
}
