//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// Activity LED: the on-board WS2812 glows green while input events are
// flowing and decays back to off when the bridge goes idle.

const statusLEDPin = machine.GP5

// ledHold is how many idle loop iterations keep the LED lit after the
// last event.
const ledHold = 1 << 14

var (
	statusLED ws2812.Device
	ledTTL    uint32
	ledOn     bool
)

func initStatusLED() {
	pin := statusLEDPin
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	statusLED = ws2812.New(pin)
	writeStatusLED(color.RGBA{})
}

func updateStatusLED(active bool) {
	if active {
		ledTTL = ledHold
		if !ledOn {
			ledOn = true
			writeStatusLED(color.RGBA{G: 0x20})
		}
		return
	}
	if ledTTL > 0 {
		ledTTL--
		if ledTTL == 0 && ledOn {
			ledOn = false
			writeStatusLED(color.RGBA{})
		}
	}
}

func writeStatusLED(c color.RGBA) {
	statusLED.WriteColors([]color.RGBA{c})
}
