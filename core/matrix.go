// MT8816 crosspoint switch-array driver
// Replicates the CreatiVision key-switch matrix: 16 columns by 4 rows of
// analog switches, addressed over a 6-bit bus with a data line and a strobe.
package core

// SwitchAddress packs one crosspoint coordinate into a byte: bits 0-3 hold
// the column (X0-X15), bits 4-5 the row (Y0-Y3). Left controller switches
// live on rows 0-1 / columns 0-7, right controller on rows 2-3 / columns 8-15.
type SwitchAddress uint8

// SwitchAt builds an address from a column (0-15) and row (0-3).
// Out-of-range arguments are a caller bug; values are masked, not validated.
func SwitchAt(col, row uint8) SwitchAddress {
	return SwitchAddress(col&0x0F | (row&0x03)<<4)
}

// Column returns the logical column, 0-15, before hardware correction.
func (a SwitchAddress) Column() uint8 { return uint8(a) & 0x0F }

// Row returns the row, 0-3.
func (a SwitchAddress) Row() uint8 { return uint8(a) >> 4 & 0x03 }

// SwitchArray is the write-only contract the translator and pollers drive.
// The hardware has no readback, so there is nothing to get.
type SwitchArray interface {
	SetCrosspoint(addr SwitchAddress, closed bool)
}

// MatrixPins assigns the output lines driving the switch array.
type MatrixPins struct {
	AX0, AX1, AX2, AX3 GPIOPin // column address bus
	AY0, AY1           GPIOPin // row address bus
	Data               GPIOPin // desired switch state
	Strobe             GPIOPin // latches address+data on its rising edge
}

// Matrix drives the crosspoint array. The chip has no readback, so the
// driver keeps no shadow of switch state: callers assert exactly what they
// want on and explicitly clear what they want off.
type Matrix struct {
	pins MatrixPins
}

// NewMatrix configures every output line and returns the driver.
func NewMatrix(pins MatrixPins) (*Matrix, error) {
	g := MustGPIO()
	for _, pin := range []GPIOPin{
		pins.AX0, pins.AX1, pins.AX2, pins.AX3,
		pins.AY0, pins.AY1, pins.Data, pins.Strobe,
	} {
		if err := g.ConfigureOutput(pin); err != nil {
			return nil, err
		}
	}
	return &Matrix{pins: pins}, nil
}

// correctedColumn maps a logical column onto the MT8816 address-decode
// truth table, which is not in ascending order: AX values 6-11 select
// columns 8-13, and AX 12-13 select columns 6-7. Applying the inverse here
// restores a plain ascending 0-15 ordering for every caller.
func correctedColumn(raw uint8) uint8 {
	switch {
	case raw >= 6 && raw <= 11:
		return raw + 2
	case raw == 12 || raw == 13:
		return raw - 6
	}
	return raw
}

// SetCrosspoint closes or opens one switch. The write sequence is fixed by
// the chip: address and data lines first, strobe pulsed high to latch, then
// every line returned to idle low.
func (m *Matrix) SetCrosspoint(addr SwitchAddress, closed bool) {
	col := correctedColumn(addr.Column())
	row := addr.Row()

	g := MustGPIO()
	g.SetPin(m.pins.AX0, col&0x01 != 0)
	g.SetPin(m.pins.AX1, col&0x02 != 0)
	g.SetPin(m.pins.AX2, col&0x04 != 0)
	g.SetPin(m.pins.AX3, col&0x08 != 0)
	g.SetPin(m.pins.AY0, row&0x01 != 0)
	g.SetPin(m.pins.AY1, row&0x02 != 0)
	g.SetPin(m.pins.Data, closed)
	g.SetPin(m.pins.Strobe, true)

	// Return the whole port to zero rather than just dropping the strobe.
	g.SetPin(m.pins.Strobe, false)
	g.SetPin(m.pins.Data, false)
	g.SetPin(m.pins.AX0, false)
	g.SetPin(m.pins.AX1, false)
	g.SetPin(m.pins.AX2, false)
	g.SetPin(m.pins.AX3, false)
	g.SetPin(m.pins.AY0, false)
	g.SetPin(m.pins.AY1, false)
}

// ResetAll forces all 64 crosspoints open. The MT8816 has no guaranteed
// power-on clear, so this runs once at startup before anything is asserted.
func (m *Matrix) ResetAll() {
	for row := uint8(0); row < 4; row++ {
		for col := uint8(0); col < 16; col++ {
			m.SetCrosspoint(SwitchAt(col, row), false)
		}
	}
}
