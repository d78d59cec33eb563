package session

import (
	"context"
	"errors"
	"log"
	"time"

	"pocketpet/internal/pet"
)

// Feed restores hunger and buzzes. The returned func plays the pattern and
// may run off the event loop.
func (c *Controller) Feed() func() {
	c.mood.Feed()
	log.Printf("session %s: fed, hunger is now %d", c.ID, c.mood.Hunger)
	return c.vibrator(pet.ActionPattern())
}

// Play restores happiness and buzzes like Feed
func (c *Controller) Play() func() {
	c.mood.Play()
	log.Printf("session %s: played, happiness is now %d", c.ID, c.mood.Happiness)
	return c.vibrator(pet.ActionPattern())
}

func (c *Controller) vibrator(pattern []time.Duration) func() {
	dev := c.device
	return func() {
		if dev != nil {
			dev.Vibrate(pattern)
		}
	}
}

// Vocalizer returns the bark as a self-contained job. It captures everything
// it needs up front, so it may run on any goroutine and outlive the session;
// it never touches the mood. Playback failures are logged and swallowed.
func (c *Controller) Vocalizer() func() {
	dev, id, ctx := c.device, c.ID, c.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return func() {
		if dev == nil {
			return
		}
		if err := dev.PlayClip(ctx, pet.BarkClip); err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			log.Printf("session %s: error playing sound: %v", id, err)
			return
		}
		if ctx.Err() != nil {
			return
		}
		dev.Vibrate(pet.BarkPattern())
	}
}

// BeginDrag starts a gesture if the pointer (in logical units) is on the
// avatar. It reports whether a gesture started.
func (c *Controller) BeginDrag(x, y float64) bool {
	if !c.position.Contains(x, y) {
		return false
	}
	c.drag.Begin(c.position)
	return true
}

// MoveDrag moves the avatar by the displacement since BeginDrag
func (c *Controller) MoveDrag(dx, dy float64) {
	if p, ok := c.drag.Move(c.viewport, dx, dy); ok {
		c.position = p
	}
}

// EndDrag finishes the gesture
func (c *Controller) EndDrag() {
	c.drag.End()
}

// Dragging reports whether a gesture is in progress
func (c *Controller) Dragging() bool {
	return c.drag.Active()
}
