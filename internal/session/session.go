package session

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"pocketpet/internal/pet"
)

// Device is the host capability the controller drives for side effects
type Device interface {
	Vibrate(pattern []time.Duration)
	PlayClip(ctx context.Context, clip string) error
}

// Controller owns the pet's mood, its on-screen position and the decay ticker.
// All methods except the closure returned by Vocalizer must be called from a
// single goroutine, one at a time.
type Controller struct {
	ID       string
	mood     pet.Mood
	position pet.Position
	viewport pet.Viewport
	placed   bool
	drag     pet.Drag
	ticker   Ticker
	device   Device

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a controller that drives dev for haptics and audio
func New(dev Device) *Controller {
	return &Controller{
		ID:     uuid.NewString()[:8],
		mood:   pet.NewMood(),
		device: dev,
	}
}

// Start resets the mood and starts the decay ticker. It returns the ticker
// generation to stamp scheduled ticks with.
func (c *Controller) Start() uint64 {
	if c.cancel != nil {
		c.cancel()
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.mood = pet.NewMood()
	gen := c.ticker.Start()
	log.Printf("session %s: started (%s)", c.ID, c.mood)
	return gen
}

// Stop tears the session down. No tick fires afterwards and in-flight
// playback is cancelled.
func (c *Controller) Stop() {
	if !c.ticker.Running() {
		return
	}
	c.ticker.Stop()
	if c.cancel != nil {
		c.cancel()
	}
	log.Printf("session %s: stopped (%s)", c.ID, c.mood)
}

// Running reports whether the session is live
func (c *Controller) Running() bool {
	return c.ticker.Running()
}

// Tick applies one decay step if gen is the live generation. The caller
// re-arms the timer only when Tick returns true.
func (c *Controller) Tick(gen uint64) bool {
	if !c.ticker.Accept(gen) {
		return false
	}
	before := c.mood.Variant()
	c.mood.Tick()
	if after := c.mood.Variant(); after != before {
		log.Printf("session %s: pet is now %s (%s)", c.ID, after, c.mood)
	}
	return true
}

// Generation returns the live ticker generation
func (c *Controller) Generation() uint64 {
	return c.ticker.Generation()
}

// Mood returns a copy of the counters
func (c *Controller) Mood() pet.Mood {
	return c.mood
}

// Variant is derived from the counters on every call
func (c *Controller) Variant() pet.Variant {
	return pet.MapMood(c.mood)
}

// Position returns the avatar's top-left offset
func (c *Controller) Position() pet.Position {
	return c.position
}

// Viewport returns the current drag bounds
func (c *Controller) Viewport() pet.Viewport {
	return c.viewport
}

// SetViewport updates the drag bounds. The first viewport places the avatar;
// later ones re-clamp it.
func (c *Controller) SetViewport(v pet.Viewport) {
	c.viewport = v
	if !c.placed {
		c.position = v.Start()
		c.placed = true
		return
	}
	c.position = v.Clamp(c.position)
}
