package source

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path"

	"github.com/spf13/afero"
)

// NewCache keeps downloads on fs keyed by url. A nil cache is valid and
// stores nothing.
func NewCache(fs afero.Fs) *Cache {
	return &Cache{fs: fs}
}

type Cache struct {
	fs afero.Fs
}

func (c *Cache) filename(url string) string {
	sum := sha1.Sum([]byte(url))
	key := hex.EncodeToString(sum[:])
	return path.Join(key[:2], key)
}

func (c *Cache) Load(url string) ([]byte, bool, error) {
	if c == nil || c.fs == nil {
		return nil, false, nil
	}

	bs, err := afero.ReadFile(c.fs, c.filename(url))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return bs, true, nil
}

func (c *Cache) Save(url string, bs []byte) error {
	if c == nil || c.fs == nil {
		return nil
	}

	file := c.filename(url)
	dir := path.Dir(file)

	if exists, err := afero.DirExists(c.fs, dir); err != nil {
		return err
	} else if !exists {
		if err2 := c.fs.MkdirAll(dir, 0755); err2 != nil {
			return err2
		}
	}

	return afero.WriteFile(c.fs, file, bs, 0644)
}
