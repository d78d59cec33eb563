package pet

import "fmt"

// Mood holds the pet's two bounded counters
type Mood struct {
	Happiness int
	Hunger    int
}

// NewMood returns the mood a pet starts every session with
func NewMood() Mood {
	return Mood{
		Happiness: InitialStat,
		Hunger:    InitialStat,
	}
}

// Tick applies one decay step. Both counters saturate at MinStat.
func (m *Mood) Tick() {
	m.Happiness = max(m.Happiness-DecayAmount, MinStat)
	m.Hunger = max(m.Hunger-DecayAmount, MinStat)
}

// Feed restores hunger, saturating at MaxStat
func (m *Mood) Feed() {
	m.Hunger = min(m.Hunger+FeedHungerIncrease, MaxStat)
}

// Play restores happiness, saturating at MaxStat
func (m *Mood) Play() {
	m.Happiness = min(m.Happiness+PlayHappinessIncrease, MaxStat)
}

// Variant is recomputed on every call and never stored.
func (m Mood) Variant() Variant {
	return MapMood(m)
}

func (m Mood) String() string {
	return fmt.Sprintf("happiness=%d hunger=%d", m.Happiness, m.Hunger)
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
