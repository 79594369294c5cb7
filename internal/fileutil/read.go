package fileutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrFileTooSmall is returned for files shorter than a UTF-8 BOM.
var ErrFileTooSmall = errors.New("file too small")

// BOMError reports a file that starts like a UTF-8 BOM but is not one.
type BOMError struct {
	Path  string
	Bytes [3]byte
}

func (e *BOMError) Error() string {
	return fmt.Sprintf("wrong UTF-8 BOM 0x%02X%02X%02X: %s", e.Bytes[0], e.Bytes[1], e.Bytes[2], e.Path)
}

// ReadFile reads a whole file. A leading UTF-8 BOM is overwritten with three
// spaces so offsets into the content stay valid.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(content) < 3 {
		return nil, fmt.Errorf("read %s: %w (size=%d)", path, ErrFileTooSmall, len(content))
	}
	if err := stripBOM(path, content); err != nil {
		return nil, err
	}
	return content, nil
}

func stripBOM(path string, content []byte) error {
	if content[0] != 0xEF {
		return nil
	}
	if content[1] != 0xBB || content[2] != 0xBF {
		return &BOMError{Path: path, Bytes: [3]byte{content[0], content[1], content[2]}}
	}
	content[0], content[1], content[2] = ' ', ' ', ' '
	return nil
}
