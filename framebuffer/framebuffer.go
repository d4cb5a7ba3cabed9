// Package framebuffer provides access to the operating system's native
// framebuffer.
//
// This requires framebuffer device support in the operating system. The
// framebuffer can be opened with the [Open] call and otherwise functions
// like a regular display. Only 16-bit 5-6-5 RGB devices are supported,
// matching the display class the dashboard targets; backlight control is
// a no-op.
package framebuffer
