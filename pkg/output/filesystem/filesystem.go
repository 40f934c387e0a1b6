// Package filesystem implements the output.Backend contract against a
// real directory tree.
//
// The backend is parameterized by a materialization root and an
// ownership-preservation flag, both fixed at construction. Every write
// resolves the caller-supplied relative path against the root, creates
// the object with one blocking filesystem call, and optionally fixes up
// ownership. There is no retry, rollback, or partial-write recovery:
// a failure aborts the single object and surfaces to the caller.
//
// Invocation is assumed single-writer and sequential. Concurrent calls
// against the same target path are left to the filesystem's own
// atomicity guarantees.
package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"github.com/treesmith/treesmith/internal/bufpool"
	"github.com/treesmith/treesmith/internal/logger"
	"github.com/treesmith/treesmith/pkg/metrics"
	"github.com/treesmith/treesmith/pkg/output"
)

// Backend materializes filesystem objects under a base directory.
type Backend struct {
	root           string
	preserveOwners bool
	metrics        metrics.OutputMetrics
}

var _ output.Backend = (*Backend)(nil)

// Option configures a Backend at construction.
type Option func(*Backend)

// WithPreserveOwners makes every write apply the recorded uid/gid to
// the created object. Requires privilege for foreign owners; failures
// surface as output.ErrOwnership.
func WithPreserveOwners() Option {
	return func(b *Backend) {
		b.preserveOwners = true
	}
}

// WithMetrics attaches a metrics recorder. Nil (the default) disables
// recording.
func WithMetrics(m metrics.OutputMetrics) Option {
	return func(b *Backend) {
		b.metrics = m
	}
}

// New creates a Backend that writes under root. Ownership preservation
// is off by default: created objects keep the invoking process's
// owner and group.
func New(root string, opts ...Option) *Backend {
	b := &Backend{root: root}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Root returns the materialization root.
func (b *Backend) Root() string {
	return b.root
}

// fullPath joins the root with a relative path and normalizes the
// result. No existence check and no containment check: the caller is
// trusted to supply paths that stay within the root.
func (b *Backend) fullPath(path string) string {
	return filepath.Join(b.root, path)
}

// fixupOwners applies the recorded uid/gid to the object at fullPath.
// No-op unless ownership preservation is enabled. With an open handle
// the change goes through the descriptor, avoiding a second path lookup
// and a race against replacement of the path; otherwise it changes the
// path without following symlinks, so a link's own owner is set rather
// than its target's.
//
// This is the only step that wraps its error; everything else in the
// backend surfaces the raw OS failure.
func (b *Backend) fixupOwners(fullPath string, st output.StatInfo, f *os.File) error {
	if !b.preserveOwners {
		return nil
	}

	var err error
	if f != nil {
		err = f.Chown(int(st.UID), int(st.GID))
	} else {
		err = os.Lchown(fullPath, int(st.UID), int(st.GID))
	}
	if err != nil {
		metrics.RecordOwnershipFailure(b.metrics)
		logger.Warn("ownership fixup failed",
			logger.Path(fullPath), logger.UID(st.UID), logger.GID(st.GID), logger.Err(err))
		return output.NewOwnershipError(fullPath, err)
	}
	return nil
}

// WriteDir creates a directory with the permission bits from st.Mode.
// Fails if an object already exists at the path or the parent is
// missing.
func (b *Backend) WriteDir(path string, st output.StatInfo) error {
	fullPath := b.fullPath(path)

	if err := os.Mkdir(fullPath, st.Perm()); err != nil {
		return err
	}
	if err := b.fixupOwners(fullPath, st, nil); err != nil {
		return err
	}

	metrics.RecordObject(b.metrics, output.TypeDirectory.String())
	logger.Debug("materialized directory", logger.Path(fullPath), logger.Mode(st.Mode))
	return nil
}

// WriteFile creates or overwrites a regular file with the permission
// bits from st.Mode, streaming content from r in fixed-size chunks.
// The open does not use exclusive-create: an existing regular file is
// truncated and overwritten in place. Ownership is applied through the
// open descriptor before close so it is set before the file becomes
// unreachable through this call. st.Size is informational only.
func (b *Backend) WriteFile(path string, st output.StatInfo, r io.Reader) error {
	fullPath := b.fullPath(path)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, st.Perm())
	if err != nil {
		return err
	}

	written, err := copyChunks(f, r)
	if err == nil {
		err = b.fixupOwners(fullPath, st, f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	metrics.RecordObject(b.metrics, output.TypeRegular.String())
	metrics.RecordBytes(b.metrics, written)
	logger.Debug("materialized regular file",
		logger.Path(fullPath), logger.Mode(st.Mode), logger.BytesWritten(written))
	return nil
}

// WriteSymlink creates a symbolic link storing target verbatim. The
// target is neither resolved nor validated for existence or
// containment. Ownership uses the no-follow variant so the link's own
// owner is set. Permission bits are accepted but not applied; symlink
// permission semantics are platform-defined.
func (b *Backend) WriteSymlink(path string, st output.StatInfo, target string) error {
	fullPath := b.fullPath(path)

	if err := os.Symlink(target, fullPath); err != nil {
		return err
	}
	if err := b.fixupOwners(fullPath, st, nil); err != nil {
		return err
	}

	metrics.RecordObject(b.metrics, output.TypeSymlink.String())
	logger.Debug("materialized symlink", logger.Path(fullPath), logger.LinkTarget(target))
	return nil
}

// WriteSpecial creates a device node, FIFO or socket according to the
// type bits of st.Mode. Devices use the (major, minor) pair packed in
// st.Rdev. Any other type bits fail with output.ErrUnsupportedType and
// create no filesystem object.
func (b *Backend) WriteSpecial(path string, st output.StatInfo) error {
	fullPath := b.fullPath(path)
	objType := st.FileType()

	switch objType {
	case output.TypeCharDevice, output.TypeBlockDevice:
		if err := mknodDevice(fullPath, st.Mode, st.Rdev); err != nil {
			return err
		}
	case output.TypeFIFO:
		if err := mkfifo(fullPath, st.Mode&output.PermMask); err != nil {
			return err
		}
	case output.TypeSocket:
		if err := mksocket(fullPath, st.Mode&output.PermMask); err != nil {
			return err
		}
	default:
		return output.NewUnsupportedTypeError(fullPath, objType)
	}

	if err := b.fixupOwners(fullPath, st, nil); err != nil {
		return err
	}

	metrics.RecordObject(b.metrics, objType.String())
	logger.Debug("materialized special file",
		logger.Path(fullPath), logger.TypeStr(objType.String()),
		logger.Mode(st.Mode), logger.Rdev(st.Rdev))
	return nil
}

// copyChunks streams src into dst in bufpool.ChunkSize chunks, bounding
// peak memory regardless of stream length. Returns the byte count
// actually written.
func copyChunks(dst io.Writer, src io.Reader) (int64, error) {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	var written int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			wn, werr := dst.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, werr
			}
			if wn < n {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
