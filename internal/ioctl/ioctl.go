//go:build linux

// Package ioctl encodes Linux ioctl requests and issues them.
package ioctl

import (
	"fmt"
	"reflect"
	"syscall"
)

// Dir is the data direction of an ioctl request, as seen from user space.
type Dir uint8

// Directions.
const (
	None Dir = iota
	Write
	Read
)

// Request is an encoded ioctl request number.
type Request uintptr

func (r Request) String() string {
	var (
		dir  = r.Dir()
		size = r.Size()
		nr   = r & 0xffff
		str  string
	)
	if dir&Write != 0 {
		str += " write"
	}
	if dir&Read != 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) %#04x", str, size, uintptr(nr))
}

// Dir returns the direction bits of the request.
func (r Request) Dir() Dir {
	return Dir(r >> 30 & 0x03)
}

// Size returns the argument size encoded in the request.
func (r Request) Size() int {
	return int(r >> 16 & 0x3fff)
}

// Encode a request from its direction, argument size and type/number pair.
func Encode(dir Dir, size uint16, nr uintptr) Request {
	return Request(dir)<<30 | Request(size&0x3fff)<<16 | Request(nr&0xffff)
}

// For encodes a request whose argument size is taken from the type ref points to.
func For(dir Dir, ref any, nr uintptr) Request {
	size := uint16(reflect.TypeOf(ref).Elem().Size())
	return Encode(dir, size, nr)
}

// Do issues req on fd, passing the address of arg (which must be a pointer, or nil).
func Do(fd uintptr, req Request, arg any) error {
	var p uintptr
	if arg != nil {
		p = reflect.ValueOf(arg).Pointer()
	}

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(req), p)
	if errno != 0 {
		return fmt.Errorf("%s failed: %w", req, errno)
	}
	return nil
}
