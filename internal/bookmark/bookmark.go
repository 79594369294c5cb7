package bookmark

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when a bookmark name is unknown.
var ErrNotFound = errors.New("bookmark not found")

// Side says which working directory a bookmark applies to.
type Side string

const (
	SideLocal  Side = "local"
	SideRemote Side = "remote"
)

// ParseSide accepts "local"/"l" and "remote"/"r".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "local", "l":
		return SideLocal, nil
	case "remote", "r", "":
		return SideRemote, nil
	}
	return "", fmt.Errorf("unknown bookmark side %q", s)
}

// Bookmark is a named path.
type Bookmark struct {
	Name  string
	Path  string
	Side  Side
	CTime int64 // unix timestamp
}

// New creates a bookmark stamped with the current time.
func New(name, path string, side Side) *Bookmark {
	return &Bookmark{
		Name:  name,
		Path:  path,
		Side:  side,
		CTime: time.Now().Unix(),
	}
}

// ToMap converts a bookmark to a map for HSET.
func (b *Bookmark) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"name":  b.Name,
		"path":  b.Path,
		"side":  string(b.Side),
		"ctime": strconv.FormatInt(b.CTime, 10),
	}
}

// FromMap parses a Redis hash into a Bookmark.
func FromMap(m map[string]string) *Bookmark {
	if len(m) == 0 {
		return nil
	}
	ctime, _ := strconv.ParseInt(m["ctime"], 10, 64)
	return &Bookmark{
		Name:  m["name"],
		Path:  m["path"],
		Side:  Side(m["side"]),
		CTime: ctime,
	}
}

// ValidateName rejects names that cannot be typed back on the command line.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("bookmark: empty name")
	}
	if strings.ContainsAny(name, " \t\r\n:") {
		return fmt.Errorf("bookmark: invalid name %q", name)
	}
	return nil
}

// Store persists bookmarks.
type Store interface {
	Set(ctx context.Context, b *Bookmark) error
	Get(ctx context.Context, name string) (*Bookmark, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*Bookmark, error)
}
