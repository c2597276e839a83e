// Package ioutils writes exported mapping records to disk.
package ioutils

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
)

// WriteFileAtomic writes data to filename through a temporary file in the
// same directory, so readers see either the old or the new contents. The
// temporary file is removed when any step fails.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	f, err := ioutil.TempFile(filepath.Dir(filename), ".tmp-"+filepath.Base(filename))
	if err != nil {
		return pkgerrors.Wrapf(err, "creating temporary file for %s", filename)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = f.Chmod(perm); err != nil {
		return err
	}
	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return pkgerrors.Wrapf(err, "writing %s", filename)
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), filename)
}

// WriteJSON writes v as indented JSON with WriteFileAtomic.
func WriteJSON(filename string, v interface{}, perm os.FileMode) error {
	p, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "encoding export")
	}
	return WriteFileAtomic(filename, append(p, '\n'), perm)
}
