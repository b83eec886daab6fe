package unit

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Digest is a content hash keying one cached Unit, computed over the
// raw source bytes it was analyzed from.
type Digest [sha256.Size]byte

// HashSource computes the Digest for a source file's raw bytes.
func HashSource(src []byte) Digest {
	return sha256.Sum256(src)
}

// Encode writes u to w in msgpack form. Grounded on surge's
// DiskCache.Put, which reaches for the same codec.
func Encode(u *Unit, w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(u)
}

// Decode reads a Unit back from r.
func Decode(r io.Reader) (*Unit, error) {
	var u Unit
	if err := msgpack.NewDecoder(r).Decode(&u); err != nil {
		return nil, err
	}
	if u.Schema != schemaVersion {
		return nil, fmt.Errorf("unit: schema mismatch: got %d, want %d", u.Schema, schemaVersion)
	}
	return &u, nil
}

// SaveFile encodes u to path, writing through a temp file and renaming
// into place so a reader never observes a partial write.
func SaveFile(path string, u *Unit) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "unit-*.tmp")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	if err := Encode(u, f); err != nil {
		f.Close()
		os.Remove(tmpName)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// LoadFile decodes a Unit previously written by SaveFile.
func LoadFile(path string) (*Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// DiskCache stores one Unit per source-content Digest under a base
// directory, keyed by hex-encoded digest. Grounded on
// internal/driver.DiskCache in the reference compiler: same
// temp-file-then-rename write path, same RWMutex guarding concurrent
// batch workers, generalized from a module-metadata payload to a full
// analyzed Unit.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache creates (if needed) and returns a disk cache rooted at
// dir.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, fmt.Sprintf("%x.unit", key))
}

// Put writes u under key, replacing any prior entry.
func (c *DiskCache) Put(key Digest, u *Unit) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return SaveFile(c.pathFor(key), u)
}

// Get reads the Unit cached under key. ok is false if nothing is
// cached yet, without that being an error.
func (c *DiskCache) Get(key Digest) (u *Unit, ok bool, err error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, err = LoadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return u, true, nil
}
