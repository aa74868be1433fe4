//go:build !dev

package display

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/redox-os/orbital/internal/rimage"
)

// MmapBackend maps a display file's framebuffer via mmap(2), the
// production path when orbitald is running atop the redox kernel (or any
// POSIX host exposing a display file with the same MAP_SHARED contract).
type MmapBackend struct{}

func (MmapBackend) Map(file *os.File, width, height int) (*rimage.Image, error) {
	length := width * height * 4
	if length <= 0 {
		return nil, errors.Errorf("invalid display dimensions %dx%d", width, height)
	}
	data, err := unix.Mmap(int(file.Fd()), 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrap(err, "mmap display fd")
	}
	pixels := unsafe.Slice((*rimage.Color)(unsafe.Pointer(&data[0])), width*height)
	return rimage.FromData(width, height, pixels), nil
}

func (MmapBackend) Unmap(img *rimage.Image) {
	if img == nil || len(img.Data()) == 0 {
		return
	}
	data := img.Data()
	length := len(data) * 4
	ptr := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), length)
	_ = unix.Munmap(ptr)
}
