package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/mkoskin/gaugectl/internal/errors"
	"github.com/mkoskin/gaugectl/internal/logger"
)

func TestNewSourceDefaultPattern(t *testing.T) {
	s, err := NewSource("", logger.Noop())
	require.NoError(t, err)

	tests := []struct {
		device  string
		matches bool
	}{
		{"sda", true},
		{"sdb", true},
		{"nvme0n1", true},
		{"nvme1n2", true},
		{"sda1", false},      // partition
		{"nvme0n1p1", false}, // partition
		{"loop0", false},
		{"dm-0", false},
		{"ram0", false},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			assert.Equal(t, tt.matches, s.devices.MatchString(tt.device))
		})
	}
}

func TestNewSourceCustomPattern(t *testing.T) {
	s, err := NewSource(`^vd[a-z]+$`, logger.Noop())
	require.NoError(t, err)
	assert.True(t, s.devices.MatchString("vda"))
	assert.False(t, s.devices.MatchString("sda"))
}

func TestNewSourceInvalidPattern(t *testing.T) {
	_, err := NewSource(`[unterminated`, logger.Noop())
	require.Error(t, err)
	assert.True(t, gerrors.IsCode(err, gerrors.ErrConfig))
}

func TestNewSourceNilLogger(t *testing.T) {
	s, err := NewSource("", nil)
	require.NoError(t, err)
	assert.NotNil(t, s.log)
}

func TestSnapshotTimestamp(t *testing.T) {
	s, err := NewSource("", logger.Noop())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.False(t, snap.At.IsZero())
}
