package catalog

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindowTime = errors.New("window time out of range")
	ErrInvertedWindow    = errors.New("window start must be before window end")
	ErrZeroLengthWindow  = errors.New("window start and end cannot be equal")
)

// WindowTime is a wall-clock point within a day, minute precision.
type WindowTime struct {
	hour   int
	minute int
}

func NewWindowTime(hour, minute int) (WindowTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return WindowTime{}, ErrInvalidWindowTime
	}
	return WindowTime{hour: hour, minute: minute}, nil
}

func (t WindowTime) Hour() int   { return t.hour }
func (t WindowTime) Minute() int { return t.minute }

func (t WindowTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t WindowTime) minutesOfDay() int {
	return t.hour*60 + t.minute
}

// OrderWindow is the daily recurring range during which a product may be
// ordered, evaluated in the engine's reference zone. Windows wrapping past
// midnight are not supported: from must precede to within one day.
type OrderWindow struct {
	from WindowTime
	to   WindowTime
}

func NewOrderWindow(from, to WindowTime) (OrderWindow, error) {
	if from.minutesOfDay() > to.minutesOfDay() {
		return OrderWindow{}, ErrInvertedWindow
	}
	if from.minutesOfDay() == to.minutesOfDay() {
		return OrderWindow{}, ErrZeroLengthWindow
	}
	return OrderWindow{from: from, to: to}, nil
}

func (w OrderWindow) From() WindowTime { return w.from }
func (w OrderWindow) To() WindowTime   { return w.to }

// Contains reports whether t's hour and minute fall inside the window,
// inclusive at both boundaries. t must already be in the reference zone.
func (w OrderWindow) Contains(t time.Time) bool {
	h, m := t.Hour(), t.Minute()

	withinHours := w.from.hour < h && h < w.to.hour
	atStartHour := h == w.from.hour && m >= w.from.minute
	atEndHour := h == w.to.hour && m <= w.to.minute

	return withinHours || atStartHour || atEndHour
}
