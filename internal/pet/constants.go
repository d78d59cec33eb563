package pet

import "time"

// Game constants
const (
	DefaultPetName   = "Pocket Pet"
	MaxStat          = 100
	MinStat          = 0
	InitialStat      = 50
	LowStatThreshold = 30 // Below this the pet looks distressed

	DecayInterval = time.Second // One point of happiness and hunger per tick
	DecayAmount   = 1

	FeedHungerIncrease    = 10
	PlayHappinessIncrease = 10

	// Avatar geometry, in logical units
	AvatarSize = 200

	// Status emojis
	StatusEmojiContent    = "😸"
	StatusEmojiDistressed = "😿"
)

// Haptic pulse timings
const (
	PulseDuration = 100 * time.Millisecond
	ActionPulses  = 10
)

// ActionPattern is played when the pet is fed or played with.
func ActionPattern() []time.Duration {
	pattern := make([]time.Duration, ActionPulses)
	for i := range pattern {
		pattern[i] = PulseDuration
	}
	return pattern
}

// BarkPattern is played once the bark clip has finished.
func BarkPattern() []time.Duration {
	return []time.Duration{PulseDuration}
}

// BarkClip identifies the audio clip played by a bark.
const BarkClip = "bark"
