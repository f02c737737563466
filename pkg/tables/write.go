package tables

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/errors"
)

// WriteFile writes data to path on fs through a temporary file in the same
// directory and a rename, so readers never see a half-written table.
// The parent directory is created when missing.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if _, err := fs.Stat(dir); os.IsNotExist(err) {
		if err := fs.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", path, err)
		}
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := fs.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("chmod", path, err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
