package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSpeedPreset(t *testing.T) {
	tests := []struct {
		in       string
		expected SpeedPreset
		wantErr  bool
	}{
		{"", SpeedNormal, false},
		{"normal", SpeedNormal, false},
		{"slow", SpeedSlow, false},
		{"fast", SpeedFast, false},
		{"instant", SpeedInstant, false},
		{"ludicrous", "", true},
	}

	for _, tc := range tests {
		got, err := ParseSpeedPreset(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "ParseSpeedPreset(%q)", tc.in)
			continue
		}
		assert.NoError(t, err, "ParseSpeedPreset(%q)", tc.in)
		assert.Equal(t, tc.expected, got, "ParseSpeedPreset(%q)", tc.in)
	}
}

func TestScaleInterval(t *testing.T) {
	base := 10 * time.Millisecond
	tests := []struct {
		preset   SpeedPreset
		expected time.Duration
	}{
		{SpeedSlow, 30 * time.Millisecond},
		{SpeedNormal, 10 * time.Millisecond},
		{"", 10 * time.Millisecond},
		{SpeedFast, 2 * time.Millisecond},
		{SpeedInstant, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ScaleInterval(base, tc.preset), "ScaleInterval(10ms, %q)", tc.preset)
	}
}

func TestIntervals(t *testing.T) {
	cfg := Default()
	cfg.Animation.Speed = SpeedSlow

	visit, path := cfg.Intervals()
	assert.Equal(t, 30*time.Millisecond, visit)
	assert.Equal(t, 150*time.Millisecond, path)
}

func TestSpeedPresetNext(t *testing.T) {
	assert.Equal(t, SpeedNormal, SpeedSlow.Next())
	assert.Equal(t, SpeedInstant, SpeedFast.Next())
	assert.Equal(t, SpeedSlow, SpeedInstant.Next(), "Next should wrap from instant to slow")
	assert.Equal(t, SpeedNormal, SpeedPreset("bogus").Next(), "unknown presets should reset to normal")
}
