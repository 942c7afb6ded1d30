package compare

import (
	"bufio"
	"image/gif"
	"os"
	"path/filepath"
)

// Save encodes g to path. The animation is written to a temporary file in
// the destination directory and renamed into place, so a failed export
// never leaves a partial file behind.
func Save(g *gif.GIF, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := gif.EncodeAll(w, g); err != nil {
		tmp.Close()
		return &IOError{Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return &IOError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
