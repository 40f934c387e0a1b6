//go:build unix

package filesystem

import (
	"golang.org/x/sys/unix"
)

// mknodDevice creates a character or block device node. mode carries
// both type and permission bits; rdev is the packed (major, minor)
// pair. Requires CAP_MKNOD or equivalent privilege.
func mknodDevice(path string, mode uint32, rdev uint64) error {
	return unix.Mknod(path, mode, int(rdev))
}

// mkfifo creates a named pipe with the given permission bits.
func mkfifo(path string, perm uint32) error {
	return unix.Mkfifo(path, perm)
}

// mksocket obtains a socket special file by binding a unix-domain
// datagram socket at path and immediately releasing the descriptor.
// bind(2) does not reliably honor requested permission bits on all
// platforms, so the intended bits are applied with an explicit chmod
// afterwards.
func mksocket(path string, perm uint32) error {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
	if err != nil {
		return err
	}
	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return err
	}
	if err := unix.Close(fd); err != nil {
		return err
	}
	return unix.Chmod(path, perm)
}
