package framebuffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"github.com/BeatGlow/dash/display"
	"github.com/BeatGlow/dash/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type linuxFrameBuffer struct {
	*pixel.RGB565Image
	f          *os.File
	fd         uintptr
	info       linuxFrameBufferInfo
	screenInfo linuxVarScreenInfo
}

// Open a Linux framebuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (display.Display, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	fb := &linuxFrameBuffer{
		f:  f,
		fd: f.Fd(),
	}
	if err = fb.ioctl(fbioGetFScreenInfo, unsafe.Pointer(&fb.info)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = fb.ioctl(fbioGetVScreenInfo, unsafe.Pointer(&fb.screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}

	img, err := linuxRGB565Image(&fb.screenInfo)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	fb.RGB565Image = img

	// Map the pixel buffer.
	if fb.Pix, err = syscall.Mmap(int(fb.fd), 0, int(fb.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	return fb, nil
}

func (fb *linuxFrameBuffer) String() string {
	bounds := fb.Bounds()
	return fmt.Sprintf("FrameBuffer %dx%d", bounds.Dx(), bounds.Dy())
}

// Close the framebuffer device.
func (fb *linuxFrameBuffer) Close() error {
	if err := syscall.Munmap(fb.Pix); err != nil {
		return err
	}
	return fb.f.Close()
}

// Show toggles the display on or off.
func (fb *linuxFrameBuffer) Show(_ bool) error {
	return nil
}

// SetContrast adjusts the contrast level.
func (fb *linuxFrameBuffer) SetContrast(_ uint8) error {
	return nil
}

// Refresh redraws the display. Writes through the mapped buffer are live,
// so there is nothing to push.
func (fb *linuxFrameBuffer) Refresh() error {
	return nil
}

func (fb *linuxFrameBuffer) ioctl(cmd uintptr, arg unsafe.Pointer) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fb.fd, cmd, uintptr(arg))
	if errno != 0 {
		return fmt.Errorf("framebuffer: ioctl %#04x failed: %v", cmd, errno)
	}
	return nil
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information
// about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// linuxRGB565Image validates that the device is a 16-bit 5-6-5 RGB mode
// and prepares an image describing it. The pixel slice is mapped by the
// caller.
func linuxRGB565Image(info *linuxVarScreenInfo) (*pixel.RGB565Image, error) {
	if info.BitsPerPixel != 16 ||
		info.Red.Offset != 11 || info.Red.Length != 5 ||
		info.Green.Offset != 5 || info.Green.Length != 6 ||
		info.Blue.Offset != 0 || info.Blue.Length != 5 ||
		info.Alpha.Length != 0 {
		return nil, errors.New("framebuffer: not a 16-bit 5-6-5 RGB device")
	}

	img := pixel.NewRGB565Image(int(info.Xres), int(info.Yres))
	img.Pix = nil // replaced by the mapped buffer
	img.Stride = int(info.XresVirtual) * 2
	// fbdev exposes pixels in host byte order.
	img.Order = binary.LittleEndian
	return img, nil
}
