// Package device adapts the terminal's bell and speaker to the pet session.
package device

import (
	"context"
	"time"
)

// Vibrator plays a haptic pattern
type Vibrator interface {
	Vibrate(pattern []time.Duration)
}

// ClipPlayer plays an audio clip by id
type ClipPlayer interface {
	Play(ctx context.Context, clip string) error
}

// Terminal is the session's device. Either half may be nil, which turns that
// effect off: a missing vibrator is silent and a missing player succeeds
// without sound.
type Terminal struct {
	Haptics Vibrator
	Audio   ClipPlayer
}

// Vibrate implements session.Device
func (t Terminal) Vibrate(pattern []time.Duration) {
	if t.Haptics == nil {
		return
	}
	t.Haptics.Vibrate(pattern)
}

// PlayClip implements session.Device
func (t Terminal) PlayClip(ctx context.Context, clip string) error {
	if t.Audio == nil {
		return ctx.Err()
	}
	return t.Audio.Play(ctx, clip)
}
