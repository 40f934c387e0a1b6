// Package output defines the contract between the comparison engine and
// the write stage that materializes filesystem objects.
//
// A Backend receives one call per object, in the order the upstream
// engine decides (typically parents before children), and must leave the
// object durably present on disk -- or fail. Backends hold no state
// across calls beyond their construction parameters; there is no
// batching, rollback, or multi-object transactionality.
package output

import (
	"io"
	"io/fs"
	"time"
)

// Mode masks, matching the POSIX st_mode layout.
const (
	// TypeMask selects the file type bits of a mode value.
	TypeMask uint32 = 0o170000

	// PermMask selects the permission bits, including setuid, setgid
	// and sticky.
	PermMask uint32 = 0o7777
)

// Special permission bits within PermMask.
const (
	setuidBit uint32 = 0o4000
	setgidBit uint32 = 0o2000
	stickyBit uint32 = 0o1000
)

// FileType identifies the kind of filesystem object encoded in a mode
// value. The constants carry the standard POSIX S_IF* values so a raw
// st_mode masked with TypeMask converts directly.
type FileType uint32

const (
	TypeFIFO        FileType = 0o010000
	TypeCharDevice  FileType = 0o020000
	TypeDirectory   FileType = 0o040000
	TypeBlockDevice FileType = 0o060000
	TypeRegular     FileType = 0o100000
	TypeSymlink     FileType = 0o120000
	TypeSocket      FileType = 0o140000
)

// String returns a human-readable name for the file type.
func (t FileType) String() string {
	switch t {
	case TypeFIFO:
		return "fifo"
	case TypeCharDevice:
		return "chardev"
	case TypeDirectory:
		return "directory"
	case TypeBlockDevice:
		return "blockdev"
	case TypeRegular:
		return "regular"
	case TypeSymlink:
		return "symlink"
	case TypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// StatInfo carries the metadata recorded for a single filesystem object.
// It is immutable for the duration of a write call.
type StatInfo struct {
	// Mode is the raw st_mode value: type bits plus permission bits.
	Mode uint32

	// UID is the numeric owner user ID.
	UID uint32

	// GID is the numeric owner group ID.
	GID uint32

	// Size is the expected byte length for regular files. It is
	// informational only; backends never verify the written byte
	// count against it.
	Size uint64

	// Mtime is the recorded modification time. Backends do not apply
	// it: the creating system call sets mtime to the current time.
	// Known limitation, not a contract violation.
	Mtime time.Time

	// Rdev is the packed (major, minor) device number. Meaningful
	// only for character and block device objects.
	Rdev uint64
}

// FileType returns the type bits of the mode.
func (st StatInfo) FileType() FileType {
	return FileType(st.Mode & TypeMask)
}

// Perm returns the permission bits converted to an fs.FileMode,
// including setuid, setgid and sticky mapped to their Go mode flags.
func (st StatInfo) Perm() fs.FileMode {
	perm := fs.FileMode(st.Mode & 0o777)
	if st.Mode&setuidBit != 0 {
		perm |= fs.ModeSetuid
	}
	if st.Mode&setgidBit != 0 {
		perm |= fs.ModeSetgid
	}
	if st.Mode&stickyBit != 0 {
		perm |= fs.ModeSticky
	}
	return perm
}

// Backend materializes filesystem objects, one call per object.
//
// Every method either completes with the object durably present in the
// described form or returns an error. A failure on one object leaves
// previously written objects untouched; the caller decides whether to
// continue.
type Backend interface {
	// WriteDir creates a directory with the permission bits from
	// st.Mode. The type bits are ignored; directory-ness is implied
	// by the operation itself.
	WriteDir(path string, st StatInfo) error

	// WriteFile creates or overwrites a regular file with the
	// permission bits from st.Mode and the content streamed from r.
	// The copy is chunked; peak memory is bounded regardless of the
	// stream length. st.Size is not enforced.
	WriteFile(path string, st StatInfo, r io.Reader) error

	// WriteSymlink creates a symbolic link whose stored target is the
	// given string verbatim. The target is neither resolved nor
	// validated. Permission bits are not applied to the link.
	WriteSymlink(path string, st StatInfo, target string) error

	// WriteSpecial creates a device node, FIFO or socket according to
	// the type bits of st.Mode. Any other type fails with an
	// unsupported-type error and creates nothing.
	WriteSpecial(path string, st StatInfo) error
}
