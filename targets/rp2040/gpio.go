//go:build rp2040

package main

import (
	"machine"

	"cvbridge/core"
)

// RPGPIODriver implements the core GPIODriver interface for the RP2040.
type RPGPIODriver struct {
	// Track configured pins to prevent conflicts
	configuredPins map[core.GPIOPin]machine.Pin
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
	}
}

// pinNumberToMachinePin maps a logical pin number to the hardware pin.
// RP2040 GPIO numbering matches machine.Pin values directly.
func (d *RPGPIODriver) pinNumberToMachinePin(pin core.GPIOPin) machine.Pin {
	return machine.Pin(pin)
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		// Already configured, this is OK
		return nil
	}

	machinePin := d.pinNumberToMachinePin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machinePin.Low()

	d.configuredPins[pin] = machinePin
	return nil
}

// ConfigureInputPullUp configures a pin as an input with pull-up resistor
func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		return nil
	}

	machinePin := d.pinNumberToMachinePin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	d.configuredPins[pin] = machinePin
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		machinePin = d.pinNumberToMachinePin(pin)
	}
	machinePin.Set(value)
	return nil
}

// ReadPin reads the current pin state
func (d *RPGPIODriver) ReadPin(pin core.GPIOPin) bool {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		machinePin = d.pinNumberToMachinePin(pin)
	}
	return machinePin.Get()
}
