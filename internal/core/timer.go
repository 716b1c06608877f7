package core

import "time"

// FrameClock paces a presenter loop at a steady frames-per-second rate.
type FrameClock struct {
	step   time.Duration
	ticker *time.Ticker
}

// NewFrameClock constructs a clock targeting the given FPS.
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	step := time.Second / time.Duration(fps)
	return &FrameClock{step: step, ticker: time.NewTicker(step)}
}

// C returns the channel that delivers one tick per frame.
func (f *FrameClock) C() <-chan time.Time { return f.ticker.C }

// SetFPS changes the frame rate. It is safe to call between frames.
func (f *FrameClock) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
	f.ticker.Reset(f.step)
}

// Stop releases the ticker. The clock must not be used afterwards.
func (f *FrameClock) Stop() { f.ticker.Stop() }
