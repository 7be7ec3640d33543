// Keyboard scan-code translation
// Consumes queued PS/2 bytes one per poll and turns completed key
// transitions into crosspoint writes.
package core

// Keyboard resolves multi-byte scan sequences into switch actions. The
// release (0xF0) and extended (0xE0/0xE1) prefixes arrive as separate bytes
// ahead of the key code, so the two pending flags persist across polls until
// a non-prefix byte lands.
type Keyboard struct {
	queue  *ScanQueue
	matrix SwitchArray

	releasePending  bool
	extendedPending bool

	unmapped uint32
}

// NewKeyboard returns a translator feeding the switch array from queue.
func NewKeyboard(queue *ScanQueue, matrix SwitchArray) *Keyboard {
	return &Keyboard{queue: queue, matrix: matrix}
}

// Poll handles at most one queued byte. It reports whether a byte was
// consumed this iteration.
func (k *Keyboard) Poll() bool {
	code, ok := k.queue.TryPop()
	if !ok {
		return false
	}

	switch code {
	case scanRelease:
		k.releasePending = true
		return true
	case scanExtended, scanExtendedAlt:
		// Deliberately leaves releasePending alone: a release sequence
		// for an extended key is 0xE0 0xF0 <code> or 0xF0 0xE0 <code>,
		// and both flags must survive until the code byte.
		k.extendedPending = true
		return true
	}

	entry, mapped := scanCodeMap[code]
	if mapped {
		action := entry.base
		if k.extendedPending {
			action = entry.ext
		}
		closed := !k.releasePending
		if action.n >= 1 {
			k.matrix.SetCrosspoint(action.a, closed)
		}
		if action.n >= 2 {
			k.matrix.SetCrosspoint(action.b, closed)
		}
	} else {
		k.unmapped++
	}

	// Any non-prefix byte ends the sequence, mapped or not. An unknown
	// scan code must not leak its prefixes into the next key.
	k.releasePending = false
	k.extendedPending = false
	return true
}

// Unmapped reports how many non-prefix bytes had no table entry.
func (k *Keyboard) Unmapped() uint32 {
	return k.unmapped
}
