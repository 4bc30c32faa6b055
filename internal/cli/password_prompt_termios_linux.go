//go:build linux

package cli

import "golang.org/x/sys/unix"

// Linux exposes termios through the TCGETS/TCSETS ioctl pair.
const (
	termiosReadRequest  = unix.TCGETS
	termiosWriteRequest = unix.TCSETS
)
