// Package compression wraps and unwraps settings archives. Exports may be
// plain, gzip or xz; imports are detected by magic bytes so a renamed file
// still loads.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/moeen/hemam-theme/internal/security"
)

// Format identifies a compression container.
type Format int

const (
	None Format = iota
	Gzip
	Xz
	Bzip2
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	bzip2Magic = []byte("BZh")
)

func (f Format) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Xz:
		return "xz"
	case Bzip2:
		return "bzip2"
	default:
		return "none"
	}
}

// Extension returns the file suffix for f, including the dot.
func (f Format) Extension() string {
	switch f {
	case Gzip:
		return ".gz"
	case Xz:
		return ".xz"
	case Bzip2:
		return ".bz2"
	default:
		return ""
	}
}

// Detect sniffs the container format from the leading bytes of data.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, xzMagic):
		return Xz
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	case bytes.HasPrefix(data, bzip2Magic):
		return Bzip2
	default:
		return None
	}
}

// FromPath picks a format from a file name's extension.
func FromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz", ".txz":
		return Xz
	case ".gz", ".tgz":
		return Gzip
	case ".bz2":
		return Bzip2
	default:
		return None
	}
}

// StripExtension removes a compression suffix from path, if any.
func StripExtension(path string) string {
	if FromPath(path) == None {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Compress wraps data in format f. bzip2 is read-only in the standard
// library, so asking for it is an error.
func Compress(data []byte, f Format) ([]byte, error) {
	var buf bytes.Buffer

	switch f {
	case None:
		return bytes.Clone(data), nil
	case Gzip:
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("failed to gzip data: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("failed to finish gzip stream: %w", err)
		}
	case Xz:
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("failed to xz data: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("failed to finish xz stream: %w", err)
		}
	default:
		return nil, fmt.Errorf("compression to %s is not supported", f)
	}

	return buf.Bytes(), nil
}

// Decompress unwraps data after detecting its format. Output larger than
// maxBytes fails with security.ErrSizeLimit.
func Decompress(data []byte, maxBytes int64) ([]byte, Format, error) {
	f := Detect(data)

	var r io.Reader
	switch f {
	case None:
		if int64(len(data)) > maxBytes {
			return nil, f, fmt.Errorf("%w: more than %d bytes", security.ErrSizeLimit, maxBytes)
		}
		return data, f, nil
	case Gzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, f, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	case Xz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, f, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case Bzip2:
		r = bzip2.NewReader(bytes.NewReader(data))
	}

	out, err := security.ReadAllLimited(r, maxBytes)
	if err != nil {
		return nil, f, fmt.Errorf("failed to decompress %s data: %w", f, err)
	}
	return out, f, nil
}
