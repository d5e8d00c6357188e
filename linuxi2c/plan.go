package linuxi2c

type stepKind uint8

const (
	stepProbe    stepKind = iota // receive byte, result discarded
	stepSend                     // send byte: sets the register pointer
	stepReceive                  // receive byte from the current pointer
	stepWrite                    // write byte data
	stepRead                     // read byte data
	stepTransfer                 // I2C_RDWR write then read
)

// step is a single SMBus transfer.
type step struct {
	Kind stepKind
	Reg  uint8
	Val  uint8
	// Dst is the index in the read buffer a received byte goes to.
	Dst int
}

// plan splits an I2C transaction into SMBus transfers. A write followed by a read cannot be split without losing
// the repeated start, so it stays a single transfer.
func plan(w, r []byte) []step {
	switch {
	case len(w) == 0 && len(r) == 0:
		return []step{{Kind: stepProbe}}
	case len(w) == 0:
		steps := make([]step, len(r))
		for i := range r {
			steps[i] = step{Kind: stepReceive, Dst: i}
		}
		return steps
	case len(w) > 1 && len(r) > 0:
		return []step{{Kind: stepTransfer, Reg: w[0]}}
	case len(w) == 1 && len(r) == 0:
		return []step{{Kind: stepSend, Reg: w[0]}}
	}

	reg := w[0]
	var steps []step
	for i, v := range w[1:] {
		steps = append(steps, step{Kind: stepWrite, Reg: reg + uint8(i), Val: v})
	}
	for i := range r {
		steps = append(steps, step{Kind: stepRead, Reg: reg + uint8(i), Dst: i})
	}
	return steps
}
