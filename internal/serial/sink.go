// Package serial owns the link to the gauge microcontroller: port
// discovery, opening with the controller's fixed line settings, and
// frame writes. The drive loop only sees the Sink interface.
package serial

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	"github.com/mkoskin/gaugectl/internal/errors"
	"github.com/mkoskin/gaugectl/internal/gauge"
)

// Sink accepts encoded gauge frames. Writes are blocking; a failed
// write means the link is down and the caller should stop driving.
type Sink interface {
	WriteFrame(frame [gauge.FrameSize]byte) error
	Close() error
}

// writeTimeout bounds a single frame write. Four bytes at 115200 baud
// take well under a millisecond; anything slower means a wedged link.
const writeTimeout = 5 * time.Second

// Port is a Sink backed by a real serial device, 8 data bits, no
// parity, one stop bit, no flow control.
type Port struct {
	port serial.Port
	name string
}

// Open opens and configures the serial device.
func Open(device string, baud int) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	p, err := serial.Open(device, mode)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSerial,
			fmt.Sprintf("Cannot open serial port %s", device),
			"Run 'gaugectl ports' to list available ports and check permissions")
	}
	if err := p.SetReadTimeout(writeTimeout); err != nil {
		p.Close()
		return nil, errors.WrapWithCode(err, errors.ErrSerial,
			fmt.Sprintf("Cannot configure serial port %s", device),
			"The device may not be a real serial port")
	}

	return &Port{port: p, name: device}, nil
}

// WriteFrame sends one 4-byte command. Short writes are reported as
// errors: the receiver has no framing recovery, so a partial frame
// would desynchronize the whole stream.
func (p *Port) WriteFrame(frame [gauge.FrameSize]byte) error {
	n, err := p.port.Write(frame[:])
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSerial,
			fmt.Sprintf("Serial write to %s failed", p.name),
			"Check the cable and reconnect the gauge controller")
	}
	if n != len(frame) {
		return errors.New(errors.ErrSerial,
			fmt.Sprintf("Short write to %s: %d of %d bytes", p.name, n, len(frame)),
			"Check the cable and reconnect the gauge controller")
	}
	return nil
}

// Close releases the port.
func (p *Port) Close() error {
	return p.port.Close()
}

// ListPorts enumerates serial device names present on the system.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSerial,
			"Cannot enumerate serial ports",
			"Port listing may be unsupported on this platform")
	}
	return ports, nil
}
