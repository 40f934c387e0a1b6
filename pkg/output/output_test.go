package output

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatInfoFileType(t *testing.T) {
	tests := []struct {
		name string
		mode uint32
		want FileType
	}{
		{"Directory", 0o755 | uint32(TypeDirectory), TypeDirectory},
		{"Regular", 0o644 | uint32(TypeRegular), TypeRegular},
		{"Symlink", 0o777 | uint32(TypeSymlink), TypeSymlink},
		{"CharDevice", 0o600 | uint32(TypeCharDevice), TypeCharDevice},
		{"BlockDevice", 0o600 | uint32(TypeBlockDevice), TypeBlockDevice},
		{"FIFO", 0o644 | uint32(TypeFIFO), TypeFIFO},
		{"Socket", 0o755 | uint32(TypeSocket), TypeSocket},
		{"NoTypeBits", 0o644, FileType(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := StatInfo{Mode: tt.mode}
			assert.Equal(t, tt.want, st.FileType())
		})
	}
}

func TestStatInfoPerm(t *testing.T) {
	t.Run("PlainBits", func(t *testing.T) {
		st := StatInfo{Mode: 0o640 | uint32(TypeRegular)}
		assert.Equal(t, fs.FileMode(0o640), st.Perm())
	})

	t.Run("SetuidMapsToModeFlag", func(t *testing.T) {
		st := StatInfo{Mode: 0o4755 | uint32(TypeRegular)}
		assert.Equal(t, fs.FileMode(0o755)|fs.ModeSetuid, st.Perm())
	})

	t.Run("SetgidMapsToModeFlag", func(t *testing.T) {
		st := StatInfo{Mode: 0o2755 | uint32(TypeDirectory)}
		assert.Equal(t, fs.FileMode(0o755)|fs.ModeSetgid, st.Perm())
	})

	t.Run("StickyMapsToModeFlag", func(t *testing.T) {
		st := StatInfo{Mode: 0o1777 | uint32(TypeDirectory)}
		assert.Equal(t, fs.FileMode(0o777)|fs.ModeSticky, st.Perm())
	})

	t.Run("TypeBitsDoNotLeak", func(t *testing.T) {
		st := StatInfo{Mode: 0o644 | uint32(TypeSocket)}
		assert.Equal(t, fs.FileMode(0o644), st.Perm())
	})
}

func TestFileTypeString(t *testing.T) {
	assert.Equal(t, "directory", TypeDirectory.String())
	assert.Equal(t, "regular", TypeRegular.String())
	assert.Equal(t, "symlink", TypeSymlink.String())
	assert.Equal(t, "chardev", TypeCharDevice.String())
	assert.Equal(t, "blockdev", TypeBlockDevice.String())
	assert.Equal(t, "fifo", TypeFIFO.String())
	assert.Equal(t, "socket", TypeSocket.String())
	assert.Equal(t, "unknown", FileType(0).String())
}
