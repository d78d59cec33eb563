package pet

// Variant is the discrete visual state derived from a Mood
type Variant int

const (
	Content Variant = iota
	Distressed
)

// MapMood picks the presentation variant. The threshold is strict, so a
// counter sitting exactly on LowStatThreshold is still Content.
func MapMood(m Mood) Variant {
	if m.Happiness < LowStatThreshold || m.Hunger < LowStatThreshold {
		return Distressed
	}
	return Content
}

func (v Variant) String() string {
	switch v {
	case Content:
		return "content"
	case Distressed:
		return "distressed"
	default:
		return "unknown"
	}
}

// GetStatus returns the status emoji for the pet's mood
func GetStatus(m Mood) string {
	if MapMood(m) == Distressed {
		return StatusEmojiDistressed
	}
	return StatusEmojiContent
}

// GetStatusWithLabel returns status with a text label for the UI
func GetStatusWithLabel(m Mood) string {
	if MapMood(m) == Content {
		return GetStatus(m) + " Happy"
	}
	switch {
	case m.Hunger < LowStatThreshold && m.Happiness < LowStatThreshold:
		return GetStatus(m) + " Hungry and sad"
	case m.Hunger < LowStatThreshold:
		return GetStatus(m) + " Hungry"
	default:
		return GetStatus(m) + " Sad"
	}
}
