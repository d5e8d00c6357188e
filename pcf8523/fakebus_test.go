package pcf8523

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"
)

var _ drivers.I2C = (*fakeBus)(nil)

var errNack = errors.New("fake: no ack")

type regWrite struct {
	Reg Register
	Val uint8
}

// fakeBus emulates a register file behind one I2C address. Register pointers auto-increment like the real chip.
type fakeBus struct {
	mu     sync.Mutex
	addr   uint16
	absent bool
	// short makes reads succeed without filling the buffer.
	short bool
	// failAfter, when set, makes that transaction and every later one fail.
	failAfter int
	// failOnly, when set, makes just that transaction fail.
	failOnly int
	txCount  int

	regs   [256]uint8
	writes []regWrite
}

func newFakeBus() *fakeBus {
	return &fakeBus{addr: Address}
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.txCount++
	if f.failAfter > 0 && f.txCount >= f.failAfter || f.txCount == f.failOnly {
		return errNack
	}
	if f.absent || addr != f.addr {
		return errNack
	}
	if len(w) == 0 {
		// probe, or a read without a register pointer which this chip does not use
		return nil
	}
	reg := w[0]
	for i, v := range w[1:] {
		f.regs[reg+uint8(i)] = v
		f.writes = append(f.writes, regWrite{Register(reg + uint8(i)), v})
	}
	if f.short {
		return nil
	}
	for i := range r {
		r[i] = f.regs[reg+uint8(i)]
	}
	return nil
}

func (f *fakeBus) reg(r Register) uint8 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.regs[r]
}

func (f *fakeBus) set(r Register, v uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regs[r] = v
}

// writesTo returns every value written to r, in order.
func (f *fakeBus) writesTo(r Register) []uint8 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []uint8
	for _, w := range f.writes {
		if w.Reg == r {
			out = append(out, w.Val)
		}
	}
	return out
}

func (f *fakeBus) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = nil
	f.txCount = 0
}
