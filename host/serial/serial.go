package serial

import (
	"io"
)

// Port represents a serial port interface.
// The abstraction keeps the monitor testable against an in-memory
// implementation while the real one rides on github.com/tarm/serial.
type Port interface {
	io.ReadCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (ignored by USB CDC, kept for real UART adapters)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a configuration for the firmware's USB CDC port
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
