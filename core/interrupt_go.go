//go:build !tinygo

package core

// State stands in for the saved interrupt state on regular Go
type State uintptr

// disableInterrupts is a no-op on regular Go so host tests run without masking
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op on regular Go
func restoreInterrupts(state State) {
}
