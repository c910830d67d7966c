package gauge

// Frame header bytes understood by the gauge microcontroller. Each
// command is exactly four bytes with no checksum or delimiter.
const (
	frameMarker  = 0xFD
	frameCommand = 0x02
	channelBase  = 0x30
)

// FrameSize is the fixed length of a gauge command on the wire.
const FrameSize = 4

// EncodeFrame packs a channel and an actuation value into the wire frame
// [0xFD, 0x02, 0x30+channel, value]. The value is clamped to a byte, so
// encoding is total: there is no error case.
func EncodeFrame(ch Channel, value int) [FrameSize]byte {
	return [FrameSize]byte{
		frameMarker,
		frameCommand,
		channelBase + byte(ch.Index()),
		byte(clampValue(value)),
	}
}
