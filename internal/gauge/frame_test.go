package gauge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeFrame(t *testing.T) {
	tests := []struct {
		name     string
		ch       Channel
		value    int
		expected [4]byte
	}{
		{"cpu channel", CPU, 32, [4]byte{0xFD, 0x02, 0x30, 32}},
		{"network channel", Network, 128, [4]byte{0xFD, 0x02, 0x31, 128}},
		{"disk channel", Disk, 0, [4]byte{0xFD, 0x02, 0x32, 0}},
		{"memory channel", Memory, 255, [4]byte{0xFD, 0x02, 0x33, 255}},
		{"value above range clamps", CPU, 300, [4]byte{0xFD, 0x02, 0x30, 255}},
		{"negative value clamps", CPU, -1, [4]byte{0xFD, 0x02, 0x30, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeFrame(tt.ch, tt.value))
		})
	}
}

func TestFrameCarriesSmoothedValue(t *testing.T) {
	// The fourth byte always equals the smoother output.
	s := NewSmoother(32, 0)
	for i := 0; i < 10; i++ {
		v := s.Smooth(Network, 200)
		frame := EncodeFrame(Network, v)
		assert.Equal(t, byte(v), frame[3])
	}
}

func TestChannelWireOrder(t *testing.T) {
	assert.Equal(t, [4]Channel{CPU, Network, Disk, Memory}, Channels)

	for i, ch := range Channels {
		assert.Equal(t, i, ch.Index())
	}
}

func TestChannelString(t *testing.T) {
	assert.Equal(t, "cpu", CPU.String())
	assert.Equal(t, "net", Network.String())
	assert.Equal(t, "disk", Disk.String())
	assert.Equal(t, "mem", Memory.String())
	assert.Equal(t, "unknown", Channel(9).String())
}
