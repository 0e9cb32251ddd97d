package network

import (
	"errors"
	"io"
	"net"
	"os"
)

// IsConnectionError checks if the error indicates a broken or lost connection.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var syscallErr *os.SyscallError
	return errors.As(err, &syscallErr)
}
