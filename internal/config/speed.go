package config

import (
	"fmt"
	"time"
)

// SpeedPreset is a named replay speed.
type SpeedPreset string

const (
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
	SpeedInstant SpeedPreset = "instant"
)

// SpeedPresets lists the presets in order from slowest to fastest.
func SpeedPresets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInstant}
}

// ParseSpeedPreset parses a preset name. The empty string means normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch SpeedPreset(s) {
	case "", SpeedNormal:
		return SpeedNormal, nil
	case SpeedSlow, SpeedFast, SpeedInstant:
		return SpeedPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown speed %q (want slow, normal, fast or instant)", s)
	}
}

// ScaleInterval applies a preset to a configured interval.
// Instant yields zero, which makes the replay reveal everything at once.
func ScaleInterval(d time.Duration, preset SpeedPreset) time.Duration {
	switch preset {
	case SpeedSlow:
		return d * 3
	case SpeedFast:
		return d / 5
	case SpeedInstant:
		return 0
	default:
		return d
	}
}

// Next returns the following preset, wrapping from instant back to slow.
func (p SpeedPreset) Next() SpeedPreset {
	presets := SpeedPresets()
	for i, candidate := range presets {
		if candidate == p {
			return presets[(i+1)%len(presets)]
		}
	}
	return SpeedNormal
}
