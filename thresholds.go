package gesture

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidThresholds is returned by ThresholdTable.Validate.
var ErrInvalidThresholds = errors.New("invalid threshold table")

// ThresholdTable holds the constants every classifier reads. A table is a
// value: tuning means building a new table, never editing one that is bound.
type ThresholdTable struct {
	// SwipeMinDistance is the minimum primary-contact travel, in pixels.
	SwipeMinDistance float64
	// SwipeMaxTime is the longest a swipe may take from press to release.
	SwipeMaxTime time.Duration

	// TapMaxDistance is the movement tolerance for taps and long presses.
	// Moving further cancels a pending long press.
	TapMaxDistance float64
	// TapMaxTime is the longest press that still counts as a tap.
	TapMaxTime time.Duration

	// LongPressDelay is how long a contact must be held before OnLongPress fires.
	LongPressDelay time.Duration

	// PinchMinScaleDelta is the minimum |scale-1| reported as a pinch.
	PinchMinScaleDelta float64

	// PanMinDistance is the travel before pan events start.
	PanMinDistance float64

	// PullThreshold is the downward travel past which a release refreshes.
	PullThreshold float64
	// PullMaxDistance caps the reported pull distance.
	PullMaxDistance float64
}

// DefaultThresholds returns the process-wide default table.
func DefaultThresholds() ThresholdTable {
	return ThresholdTable{
		SwipeMinDistance:   50,
		SwipeMaxTime:       300 * time.Millisecond,
		TapMaxDistance:     10,
		TapMaxTime:         200 * time.Millisecond,
		LongPressDelay:     500 * time.Millisecond,
		PinchMinScaleDelta: 0.1,
		PanMinDistance:     5,
		PullThreshold:      80,
		PullMaxDistance:    150,
	}
}

// Validate reports the first field that is out of range.
func (t ThresholdTable) Validate() error {
	switch {
	case t.SwipeMinDistance <= 0:
		return fmt.Errorf("%w: swipe min distance must be positive, got %v", ErrInvalidThresholds, t.SwipeMinDistance)
	case t.SwipeMaxTime <= 0:
		return fmt.Errorf("%w: swipe max time must be positive, got %v", ErrInvalidThresholds, t.SwipeMaxTime)
	case t.TapMaxDistance < 0:
		return fmt.Errorf("%w: tap max distance must not be negative, got %v", ErrInvalidThresholds, t.TapMaxDistance)
	case t.TapMaxTime <= 0:
		return fmt.Errorf("%w: tap max time must be positive, got %v", ErrInvalidThresholds, t.TapMaxTime)
	case t.LongPressDelay <= 0:
		return fmt.Errorf("%w: long press delay must be positive, got %v", ErrInvalidThresholds, t.LongPressDelay)
	case t.PinchMinScaleDelta <= 0:
		return fmt.Errorf("%w: pinch min scale delta must be positive, got %v", ErrInvalidThresholds, t.PinchMinScaleDelta)
	case t.PanMinDistance < 0:
		return fmt.Errorf("%w: pan min distance must not be negative, got %v", ErrInvalidThresholds, t.PanMinDistance)
	case t.PullThreshold <= 0:
		return fmt.Errorf("%w: pull threshold must be positive, got %v", ErrInvalidThresholds, t.PullThreshold)
	case t.PullMaxDistance < t.PullThreshold:
		return fmt.Errorf("%w: pull max distance %v is below pull threshold %v", ErrInvalidThresholds, t.PullMaxDistance, t.PullThreshold)
	}
	return nil
}
