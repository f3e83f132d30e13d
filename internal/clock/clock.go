// Package clock предоставляет источник текущего времени,
// который передается в нормализаторы явно.
package clock

import "time"

// Clock возвращает текущий момент.
type Clock interface {
	Now() time.Time
}

// SystemClock читает системные часы в UTC.
type SystemClock struct{}

// NewSystemClock создает часы, читающие системное время.
func NewSystemClock() Clock {
	return SystemClock{}
}

// Now реализует интерфейс Clock.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock всегда возвращает один и тот же момент.
type FixedClock struct {
	at time.Time
}

// NewFixedClock создает часы, остановленные на моменте at.
func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{at: at.UTC()}
}

// Now реализует интерфейс Clock.
func (c *FixedClock) Now() time.Time {
	return c.at
}
