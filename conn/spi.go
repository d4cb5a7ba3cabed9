// Package conn implements the spidev transport used to reach the display
// controller.
package conn

import (
	"fmt"
	"os"

	"github.com/BeatGlow/dash/internal/ioctl"
)

// SPIMode is the SPI clock polarity and phase. The mode number encodes
// CPHA in bit 0 and CPOL in bit 1.
type SPIMode uint8

// SPI modes.
const (
	SPIMode0 SPIMode = iota // CPOL=0 CPHA=0
	SPIMode1                // CPOL=0 CPHA=1
	SPIMode2                // CPOL=1 CPHA=0
	SPIMode3                // CPOL=1 CPHA=1
)

// Requests from <linux/spi/spidev.h>.
const (
	spiIOCMode        = 0x6b01
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
)

// SPI is a spidev bus handle.
type SPI struct {
	f           *os.File
	fd          uintptr
	mode        SPIMode
	bitsPerWord uint8
	maxSpeedHz  uint32
}

// OpenSPI opens /dev/spidev<bus>.<device> and reads back the current bus
// state. The device number usually selects the CS pin on that bus.
func OpenSPI(bus, device int) (*SPI, error) {
	f, err := os.OpenFile(fmt.Sprintf("/dev/spidev%d.%d", bus, device), os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{f: f, fd: f.Fd()}
	for _, state := range []struct {
		ptr interface{}
		cmd uintptr
	}{
		{&c.mode, spiIOCMode},
		{&c.bitsPerWord, spiIOCBitsPerWord},
		{&c.maxSpeedHz, spiIOCMaxSpeedHz},
	} {
		if err = c.get(state.ptr, state.cmd); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return c, nil
}

func (c *SPI) get(ptr interface{}, cmd uintptr) error {
	return ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, ptr, cmd), ptr)
}

func (c *SPI) set(ptr interface{}, cmd uintptr) error {
	return ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, ptr, cmd), ptr)
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("spidev mode=%d bits per word=%d max speed=%dHz", c.mode, c.bitsPerWord, c.maxSpeedHz)
}

// Mode returns the active SPI mode.
func (c *SPI) Mode() SPIMode {
	return c.mode
}

// SetMode switches the clock polarity and phase, and verifies the device
// accepted it.
func (c *SPI) SetMode(mode SPIMode) error {
	mode &= 0x0f
	if err := c.set(&mode, spiIOCMode); err != nil {
		return err
	}

	var active SPIMode
	if err := c.get(&active, spiIOCMode); err != nil {
		return err
	}
	if active != mode {
		return fmt.Errorf("conn: SPI mode %#02x requested, but the device reports mode %#02x", mode, active)
	}

	c.mode = mode
	return nil
}

// BitsPerWord returns the active word size.
func (c *SPI) BitsPerWord() uint8 {
	return c.bitsPerWord
}

// SetBitsPerWord sets the word size, 8 up to and including 32 bits.
func (c *SPI) SetBitsPerWord(bits uint8) error {
	if bits < 8 || bits > 32 {
		return fmt.Errorf("conn: SPI bits per word out of range: %d", bits)
	}
	if bits == c.bitsPerWord {
		return nil
	}
	if err := c.set(&bits, spiIOCBitsPerWord); err != nil {
		return err
	}
	c.bitsPerWord = bits
	return nil
}

// MaxSpeed returns the clock ceiling in Hz.
func (c *SPI) MaxSpeed() int {
	return int(c.maxSpeedHz)
}

// SetMaxSpeed sets the clock ceiling in Hz. Negative values are ignored.
func (c *SPI) SetMaxSpeed(v int) error {
	if v < 0 {
		return nil
	}
	u := uint32(v)
	if u == c.maxSpeedHz {
		return nil
	}
	if err := c.set(&u, spiIOCMaxSpeedHz); err != nil {
		return err
	}
	c.maxSpeedHz = u
	return nil
}

func (c *SPI) Read(p []byte) (n int, err error) {
	return c.f.Read(p)
}

func (c *SPI) Write(p []byte) (n int, err error) {
	return c.f.Write(p)
}
