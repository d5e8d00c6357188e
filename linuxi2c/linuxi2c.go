// Package linuxi2c lets drivers written against tinygo.org/x/drivers run on a Linux host, using the kernel's
// /dev/i2c-N SMBus interface.
//
// Register style transactions, a register pointer followed by data to write or by bytes to read, become one SMBus
// byte-data transfer per byte at consecutive registers, which matches chips that auto-increment their register
// pointer. A transaction that both writes data and reads is sent as one I2C_RDWR transfer with a repeated start.
package linuxi2c

import (
	"fmt"
	"sync"

	"github.com/platinasystems/i2c"
	"tinygo.org/x/drivers"
)

var _ drivers.I2C = (*Bus)(nil)

// Bus is an open /dev/i2c-N adapter. It is safe for concurrent use.
type Bus struct {
	n int

	// the slave address is per file descriptor state, so mu is held for a whole transaction
	mu  sync.Mutex
	bus i2c.Bus
}

// Open opens /dev/i2c-n.
func Open(n int) (*Bus, error) {
	b := &Bus{n: n}
	if err := b.bus.Open(n); err != nil {
		return nil, fmt.Errorf("linuxi2c: open bus %d: %w", n, err)
	}
	return b, nil
}

// Close releases the bus.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.bus.Close(); err != nil {
		return fmt.Errorf("linuxi2c: close bus %d: %w", b.n, err)
	}
	return nil
}

// Tx performs one transaction with the device at addr. An empty transaction probes for the device.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	steps := plan(w, r)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.bus.ForceSlaveAddress(int(addr)); err != nil {
		return fmt.Errorf("linuxi2c: bus %d address %#02x: %w", b.n, addr, err)
	}

	var (
		sd  i2c.SMBusData
		err error
	)
	for _, s := range steps {
		switch s.Kind {
		case stepTransfer:
			err = b.bus.Send(messages(addr, w, r))
		case stepProbe, stepReceive:
			err = b.bus.Do(i2c.Read, 0, i2c.Byte, &sd)
		case stepSend:
			err = b.bus.Do(i2c.Write, s.Reg, i2c.Byte, &sd)
		case stepWrite:
			sd[0] = s.Val
			err = b.bus.Do(i2c.Write, s.Reg, i2c.ByteData, &sd)
		case stepRead:
			err = b.bus.Do(i2c.Read, s.Reg, i2c.ByteData, &sd)
		}
		if err != nil {
			return fmt.Errorf("linuxi2c: bus %d address %#02x register %#02x: %w", b.n, addr, s.Reg, err)
		}
		if s.Kind == stepReceive || s.Kind == stepRead {
			r[s.Dst] = sd[0]
		}
	}
	return nil
}

// messages builds a write then a read of the same device, joined by a repeated start.
func messages(addr uint16, w, r []byte) []i2c.Message {
	return []i2c.Message{
		{Address: addr, Data: w},
		{Address: addr, Flags: i2c.ReadData, Data: r},
	}
}
