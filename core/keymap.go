// CreatiVision key-switch map
// Build-time data only: which crosspoints stand in for each PS/2 scan code
// and each joystick line. Columns/rows follow the console schematic's PIA
// port wiring. Both controllers share PIA port B column lines; port A pins
// select the controller half of the array.
package core

// PIA port A pins carry the row selection (and, for the right controller,
// the upper column bank). Port B pins are plain column offsets.
const (
	piaPA0 SwitchAddress = 0x00 // left controller, row 0
	piaPA1 SwitchAddress = 0x10 // left controller, row 1
	piaPA2 SwitchAddress = 0x28 // right controller, row 2
	piaPA3 SwitchAddress = 0x38 // right controller, row 3

	piaPB0 SwitchAddress = 0x00
	piaPB1 SwitchAddress = 0x01
	piaPB2 SwitchAddress = 0x02
	piaPB3 SwitchAddress = 0x03
	piaPB4 SwitchAddress = 0x04
	piaPB5 SwitchAddress = 0x05
	piaPB6 SwitchAddress = 0x06
	piaPB7 SwitchAddress = 0x07
)

// switchSet is the action a key resolves to: one or two crosspoints to
// drive together. Most CreatiVision keys close two row/column paths at once;
// a few (shift, control, minus, arrows) close just one. A zero switchSet
// means no action in that context.
type switchSet struct {
	a, b SwitchAddress
	n    uint8
}

func pair(a, b SwitchAddress) switchSet { return switchSet{a: a, b: b, n: 2} }
func single(a SwitchAddress) switchSet  { return switchSet{a: a, n: 1} }

// keyEntry gives the action for a scan code in each prefix context. Several
// raw codes are overloaded between a keypad key and an extended navigation
// key, so the two contexts can differ, and keypad-only codes leave the
// extended action empty.
type keyEntry struct {
	base switchSet // no 0xE0/0xE1 prefix pending
	ext  switchSet // extended prefix pending
}

func always(s switchSet) keyEntry        { return keyEntry{base: s, ext: s} }
func baseOnly(s switchSet) keyEntry      { return keyEntry{base: s} }
func split(base, ext switchSet) keyEntry { return keyEntry{base: base, ext: ext} }

// Prefix scan codes handled by the translator itself.
const (
	scanRelease     = 0xF0
	scanExtended    = 0xE0
	scanExtendedAlt = 0xE1
)

// Left controller keyboard (24 keys).
var (
	key1     = pair(piaPA0|piaPB3, piaPA0|piaPB2)
	key2     = pair(piaPA1|piaPB5, piaPA1|piaPB4)
	key3     = pair(piaPA1|piaPB5, piaPA1|piaPB6)
	key4     = pair(piaPA1|piaPB5, piaPA1|piaPB3)
	key5     = pair(piaPA1|piaPB6, piaPA1|piaPB3)
	key6     = pair(piaPA1|piaPB6, piaPA1|piaPB4)
	keyCtrl  = single(piaPA0 | piaPB7)
	keyQ     = pair(piaPA1|piaPB4, piaPA1|piaPB3)
	keyW     = pair(piaPA1|piaPB3, piaPA1|piaPB2)
	keyE     = pair(piaPA1|piaPB4, piaPA1|piaPB2)
	keyR     = pair(piaPA1|piaPB5, piaPA1|piaPB2)
	keyT     = pair(piaPA1|piaPB6, piaPA1|piaPB2)
	keyLeft  = pair(piaPA1|piaPB3, piaPA1|piaPB0)
	keyA     = pair(piaPA1|piaPB4, piaPA1|piaPB0)
	keyS     = pair(piaPA1|piaPB5, piaPA1|piaPB0)
	keyD     = pair(piaPA1|piaPB6, piaPA1|piaPB0)
	keyF     = pair(piaPA1|piaPB1, piaPA1|piaPB0)
	keyG     = pair(piaPA1|piaPB2, piaPA1|piaPB0)
	keyShift = single(piaPA1 | piaPB7)
	keyZ     = pair(piaPA1|piaPB3, piaPA1|piaPB1)
	keyX     = pair(piaPA1|piaPB4, piaPA1|piaPB1)
	keyC     = pair(piaPA1|piaPB5, piaPA1|piaPB1)
	keyV     = pair(piaPA1|piaPB6, piaPA1|piaPB1)
	keyB     = pair(piaPA1|piaPB2, piaPA1|piaPB1)
)

// Right controller keyboard (24 keys).
var (
	key7         = pair(piaPA3|piaPB1, piaPA3|piaPB2)
	key8         = pair(piaPA3|piaPB6, piaPA3|piaPB1)
	key9         = pair(piaPA3|piaPB5, piaPA3|piaPB1)
	key0         = pair(piaPA3|piaPB4, piaPA3|piaPB1)
	keyColon     = pair(piaPA3|piaPB3, piaPA3|piaPB1)
	keyMinus     = single(piaPA3 | piaPB7)
	keyY         = pair(piaPA3|piaPB0, piaPA3|piaPB2)
	keyU         = pair(piaPA3|piaPB0, piaPA3|piaPB1)
	keyI         = pair(piaPA3|piaPB6, piaPA3|piaPB0)
	keyO         = pair(piaPA3|piaPB5, piaPA3|piaPB0)
	keyP         = pair(piaPA3|piaPB4, piaPA3|piaPB0)
	keyReturn    = pair(piaPA3|piaPB3, piaPA3|piaPB0)
	keyH         = pair(piaPA3|piaPB6, piaPA3|piaPB2)
	keyJ         = pair(piaPA3|piaPB5, piaPA3|piaPB2)
	keyK         = pair(piaPA3|piaPB4, piaPA3|piaPB2)
	keyL         = pair(piaPA3|piaPB3, piaPA3|piaPB2)
	keySemicolon = pair(piaPA3|piaPB4, piaPA3|piaPB3)
	keyN         = pair(piaPA3|piaPB6, piaPA3|piaPB4)
	keyM         = pair(piaPA3|piaPB6, piaPA3|piaPB3)
	keyComma     = pair(piaPA3|piaPB5, piaPA3|piaPB3)
	keyPeriod    = pair(piaPA3|piaPB6, piaPA3|piaPB5)
	keySlash     = pair(piaPA3|piaPB5, piaPA3|piaPB4)
	keyRight     = single(piaPA2 | piaPB7)
	keySpace     = pair(piaPA2|piaPB3, piaPA2|piaPB2)
)

// scanCodeMap resolves PS/2 set-2 scan codes to switch actions. The PS/2
// shifted legends differ from the CreatiVision's, so keys are mapped by
// their main legend; the single-quote key doubles as the console's colon
// key, and backspace doubles as its left-arrow.
var scanCodeMap = map[byte]keyEntry{
	// Left controller keys.
	0x16: always(key1),
	0x69: baseOnly(key1), // keypad 1
	0x1E: always(key2),
	0x72: baseOnly(key2), // keypad 2
	0x26: always(key3),
	0x7A: baseOnly(key3), // keypad 3
	0x25: always(key4),
	0x2E: always(key5),
	0x73: always(key5), // keypad 5
	0x36: always(key6),
	0x15: always(keyQ),
	0x1D: always(keyW),
	0x24: always(keyE),
	0x2D: always(keyR),
	0x2C: always(keyT),
	0x6B: split(key4, keyLeft), // keypad 4 / left arrow
	0x66: always(keyLeft),      // backspace
	0x1C: always(keyA),
	0x1B: always(keyS),
	0x23: always(keyD),
	0x2B: always(keyF),
	0x34: always(keyG),
	0x12: baseOnly(keyShift), // left shift
	0x59: always(keyShift),   // right shift
	0x1A: always(keyZ),
	0x22: always(keyX),
	0x21: always(keyC),
	0x2A: always(keyV),
	0x32: always(keyB),
	0x14: always(keyCtrl),

	// Right controller keys.
	0x3D: always(key7),
	0x6C: baseOnly(key7), // keypad 7
	0x3E: always(key8),
	0x75: baseOnly(key8), // keypad 8
	0x46: always(key9),
	0x7D: baseOnly(key9), // keypad 9
	0x45: always(key0),
	0x70: baseOnly(key0),   // keypad 0
	0x52: always(keyColon), // single-quote
	0x4E: always(keyMinus),
	0x7B: always(keyMinus), // keypad -
	0x35: always(keyY),
	0x3C: always(keyU),
	0x43: always(keyI),
	0x44: always(keyO),
	0x4D: always(keyP),
	0x5A: always(keyReturn), // enter, plain or keypad
	0x33: always(keyH),
	0x3B: always(keyJ),
	0x42: always(keyK),
	0x4B: always(keyL),
	0x4C: always(keySemicolon),
	0x31: always(keyN),
	0x3A: always(keyM),
	0x41: always(keyComma),
	0x49: always(keyPeriod),
	0x71: baseOnly(keyPeriod),  // keypad .
	0x4A: always(keySlash),      // slash, plain or keypad
	0x74: split(key6, keyRight), // keypad 6 / right arrow
	0x29: always(keySpace),
}

// JoystickWiring names the crosspoints replicating one 8-way stick. Each
// diagonal carries a dedicated extra switch on top of its two cardinals,
// matching the extra contacts in the original controller's switch layout
// (up-right and down-left share one).
type JoystickWiring struct {
	Up, Down, Left, Right SwitchAddress

	UpLeftExtra          SwitchAddress
	UpRightDownLeftExtra SwitchAddress
	DownRightExtra       SwitchAddress

	Button1, Button2 SwitchAddress
}

// LeftStickWiring maps the left controller joystick.
var LeftStickWiring = JoystickWiring{
	Up:                   piaPA0 | piaPB3,
	Down:                 piaPA0 | piaPB1,
	Left:                 piaPA0 | piaPB5,
	Right:                piaPA0 | piaPB2,
	UpLeftExtra:          piaPA0 | piaPB4,
	UpRightDownLeftExtra: piaPA0 | piaPB6,
	DownRightExtra:       piaPA0 | piaPB0,
	Button1:              piaPA0 | piaPB7,
	Button2:              piaPA1 | piaPB7,
}

// RightStickWiring maps the right controller joystick.
var RightStickWiring = JoystickWiring{
	Up:                   piaPA2 | piaPB3,
	Down:                 piaPA2 | piaPB1,
	Left:                 piaPA2 | piaPB5,
	Right:                piaPA2 | piaPB2,
	UpLeftExtra:          piaPA2 | piaPB4,
	UpRightDownLeftExtra: piaPA2 | piaPB6,
	DownRightExtra:       piaPA2 | piaPB0,
	Button1:              piaPA2 | piaPB7,
	Button2:              piaPA3 | piaPB7,
}
