// Package gauge converts host metric readings into bounded actuation
// values and encodes them into the 4-byte gauge command frame.
package gauge

// Channel identifies one of the four physical gauges.
// The set is closed: exactly these four channels exist on the wire.
type Channel int

const (
	CPU Channel = iota
	Network
	Disk
	Memory
)

// NumChannels is the number of physical gauge channels.
const NumChannels = 4

// Channels lists all channels in wire order. The drive loop iterates
// this slice so every tick addresses the gauges in the same order.
var Channels = [NumChannels]Channel{CPU, Network, Disk, Memory}

// Index returns the wire sub-address index of the channel (0-3).
func (c Channel) Index() int {
	return int(c)
}

// String returns a human-readable channel name.
func (c Channel) String() string {
	switch c {
	case CPU:
		return "cpu"
	case Network:
		return "net"
	case Disk:
		return "disk"
	case Memory:
		return "mem"
	default:
		return "unknown"
	}
}
