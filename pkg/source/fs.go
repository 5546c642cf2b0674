package source

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// NewDirFs roots a filesystem at an existing directory.
func NewDirFs(path string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, path); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.Errorf("dir %s not exists", path)
	}
	return afero.NewBasePathFs(fs, path), nil
}

// NewLoader reads images from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

type Loader struct {
	fs afero.Fs
}

func (l *Loader) Load(name string) (*Sequence, error) {
	bs, err := afero.ReadFile(l.fs, name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}

	seq, err := Decode(bs)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return seq, nil
}
