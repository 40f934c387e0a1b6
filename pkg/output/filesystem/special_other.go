//go:build !unix

package filesystem

import (
	"errors"
	"os"
)

// Special files (device nodes, FIFOs, sockets) cannot be materialized
// on this platform. Each creation reports errors.ErrUnsupported in its
// native *os.PathError form.

func mknodDevice(path string, mode uint32, rdev uint64) error {
	return &os.PathError{Op: "mknod", Path: path, Err: errors.ErrUnsupported}
}

func mkfifo(path string, perm uint32) error {
	return &os.PathError{Op: "mkfifo", Path: path, Err: errors.ErrUnsupported}
}

func mksocket(path string, perm uint32) error {
	return &os.PathError{Op: "bind", Path: path, Err: errors.ErrUnsupported}
}
