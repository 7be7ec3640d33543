//go:build rp2040

// CreatiVision controller interface firmware for RP2040 boards.
// Bridges a PS/2 keyboard and two digital joysticks onto the console's
// key-switch matrix through an MT8816 analog switch array.
package main

import (
	"machine"
	"time"

	"cvbridge/core"
)

// Pin assignment. All of this is build-time configuration; there is no
// runtime protocol to change it.
const (
	// PS/2 keyboard. Clock is the falling-edge interrupt source, data is
	// sampled inside the handler.
	ps2ClockPin = machine.GP2
	ps2DataPin  = machine.GP3
)

var matrixPins = core.MatrixPins{
	AX0: 6, AX1: 7, AX2: 8, AX3: 9, // GP6-GP9: column address bus
	AY0: 10, AY1: 11, // GP10-GP11: row address bus
	Data:   12,
	Strobe: 13,
}

var leftStickPins = core.JoystickPins{
	Up: 16, Down: 17, Left: 18, Right: 19,
	Button1: 20, Button2: 21,
}

var rightStickPins = core.JoystickPins{
	Up: 22, Down: 26, Left: 27, Right: 28,
	Button1: 14, Button2: 15,
}

// statsInterval is how many loop iterations pass between diagnostic lines
// when debug output is enabled.
const statsInterval = 1 << 20

var bridge *core.Bridge

func main() {
	// Register the hardware GPIO driver before any core code runs.
	core.SetGPIODriver(NewRPGPIODriver())

	// Route diagnostics to USB CDC. Only the periodic stats line ever
	// writes, so the poll loop stays off the serial path between reports.
	machine.Serial.Configure(machine.UARTConfig{})
	core.SetDebugWriter(func(s string) {
		machine.Serial.Write([]byte(s + "\r\n"))
	})
	core.SetDebugEnabled(true)

	b, err := core.NewBridge(core.BridgeConfig{
		Matrix:     matrixPins,
		LeftStick:  leftStickPins,
		RightStick: rightStickPins,
	})
	if err != nil {
		// Pin configuration cannot fail on this board; if it somehow
		// does there is nothing sensible to bridge. Keep repeating the
		// reason so a late-attached serial monitor still catches it.
		for {
			core.DebugPrintln("bridge init failed: " + err.Error())
			time.Sleep(time.Second)
		}
	}
	bridge = b

	initStatusLED()

	// PS/2 devices clock data out on the falling edge. The handler body
	// is one pin read and a few shifts, well within budget for the
	// 10-16.7 kHz PS/2 clock.
	ps2Data := ps2DataPin
	ps2Data.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	ps2Clock := ps2ClockPin
	ps2Clock.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	ps2Clock.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		bridge.Decoder.ClockEdge(ps2Data.Get())
	})

	var iterations uint32
	for {
		active := bridge.Poll()
		updateStatusLED(active)

		iterations++
		if iterations%statsInterval == 0 {
			core.DebugPrintln(bridge.StatsLine())
		}
	}
}
