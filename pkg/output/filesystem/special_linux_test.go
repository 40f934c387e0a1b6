//go:build linux

package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/treesmith/treesmith/pkg/output"
)

// Device node creation needs CAP_MKNOD, so these tests only run as root.
func TestWriteSpecialDevice(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("requires root")
	}

	tests := []struct {
		name  string
		ftype output.FileType
		mode  fs.FileMode
	}{
		{"CharDevice", output.TypeCharDevice, fs.ModeDevice | fs.ModeCharDevice},
		{"BlockDevice", output.TypeBlockDevice, fs.ModeDevice},
	}

	const (
		devMajor = 12
		devMinor = 7
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(t.TempDir())
			st := statWithDefaults(0o600 | uint32(tt.ftype))
			st.Rdev = unix.Mkdev(devMajor, devMinor)
			require.NoError(t, b.WriteSpecial("my-dev", st))

			full := filepath.Join(b.Root(), "my-dev")
			info, err := os.Lstat(full)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, info.Mode().Type())
			assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())

			// (major, minor) round-trips through the on-disk rdev.
			var sys unix.Stat_t
			require.NoError(t, unix.Lstat(full, &sys))
			assert.Equal(t, uint32(devMajor), unix.Major(uint64(sys.Rdev)))
			assert.Equal(t, uint32(devMinor), unix.Minor(uint64(sys.Rdev)))
		})
	}
}
