package gauge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmootherConvergesInSteps(t *testing.T) {
	s := NewSmoother(32, 0)

	// Spec scenario: target 100 from rest with max delta 32.
	expected := []int{32, 64, 96, 100, 100}
	for i, want := range expected {
		got := s.Smooth(CPU, 100)
		assert.Equal(t, want, got, "tick %d", i+1)
	}
}

func TestSmootherBoundsDelta(t *testing.T) {
	tests := []struct {
		name     string
		maxDelta int
	}{
		{"small delta", 5},
		{"typical delta", 32},
		{"zero delta pins the needle", 0},
		{"large delta disables smoothing", 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSmoother(tt.maxDelta, 0)
			rng := rand.New(rand.NewSource(1))

			prev := s.Last(Disk)
			for i := 0; i < 200; i++ {
				target := rng.Intn(600) - 150 // deliberately out of range too
				v := s.Smooth(Disk, target)

				diff := v - prev
				if diff < 0 {
					diff = -diff
				}
				assert.LessOrEqual(t, diff, tt.maxDelta)
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 255)
				prev = v
			}
		})
	}
}

func TestSmootherConvergence(t *testing.T) {
	// Holding a constant target for ceil(255/maxDelta) ticks reaches it.
	maxDelta := 32
	s := NewSmoother(maxDelta, 0)

	ticks := (255 + maxDelta - 1) / maxDelta
	var v int
	for i := 0; i < ticks; i++ {
		v = s.Smooth(Memory, 255)
	}
	assert.Equal(t, 255, v)
}

func TestSmootherIndependentChannels(t *testing.T) {
	s := NewSmoother(32, 0)

	s.Smooth(CPU, 255)
	s.Smooth(Network, 10)

	assert.Equal(t, 32, s.Last(CPU))
	assert.Equal(t, 10, s.Last(Network))
	assert.Equal(t, 0, s.Last(Disk))
	assert.Equal(t, 0, s.Last(Memory))
}

func TestSmootherRestValue(t *testing.T) {
	s := NewSmoother(32, 128)
	assert.Equal(t, 128, s.Last(CPU))

	// Moves away from the resting value, not from zero.
	assert.Equal(t, 96, s.Smooth(CPU, 0))
}

func TestSmootherClampsTarget(t *testing.T) {
	s := NewSmoother(255, 0)
	assert.Equal(t, 255, s.Smooth(CPU, 400))
	assert.Equal(t, 0, s.Smooth(CPU, -90))
}
