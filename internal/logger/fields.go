package logger

import "log/slog"

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so materialized
// object traces stay queryable in log aggregation.
const (
	KeyPath         = "path"          // resolved target path
	KeyType         = "type"          // object type: directory, regular, symlink, ...
	KeyMode         = "mode"          // raw mode value (octal)
	KeySize         = "size"          // expected size in bytes
	KeyBytesWritten = "bytes_written" // actual bytes copied
	KeyUID          = "uid"           // owner user ID
	KeyGID          = "gid"           // owner group ID
	KeyLinkTarget   = "link_target"   // symbolic link target
	KeyRdev         = "rdev"          // packed device number
	KeyError        = "error"         // error message
)

// Path returns a slog.Attr for the resolved target path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// TypeStr returns a slog.Attr for the object type name
func TypeStr(t string) slog.Attr {
	return slog.String(KeyType, t)
}

// Mode returns a slog.Attr for a raw mode value
func Mode(m uint32) slog.Attr {
	return slog.Any(KeyMode, m)
}

// Size returns a slog.Attr for the expected size
func Size(s uint64) slog.Attr {
	return slog.Uint64(KeySize, s)
}

// BytesWritten returns a slog.Attr for actual bytes copied
func BytesWritten(n int64) slog.Attr {
	return slog.Int64(KeyBytesWritten, n)
}

// UID returns a slog.Attr for the owner user ID
func UID(uid uint32) slog.Attr {
	return slog.Any(KeyUID, uid)
}

// GID returns a slog.Attr for the owner group ID
func GID(gid uint32) slog.Attr {
	return slog.Any(KeyGID, gid)
}

// LinkTarget returns a slog.Attr for a symbolic link target
func LinkTarget(target string) slog.Attr {
	return slog.String(KeyLinkTarget, target)
}

// Rdev returns a slog.Attr for a packed device number
func Rdev(rdev uint64) slog.Attr {
	return slog.Uint64(KeyRdev, rdev)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
