package chart

import (
	"os"
	"path/filepath"
)

// writeFileAtomic replaces path with data through a temporary file in the
// same directory, so readers see either the old file or the complete new
// one. The directory must already exist.
func writeFileAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return ioFailure(err, "writing %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return ioFailure(err, "writing %s", path)
	}
	if err = f.Chmod(0644); err != nil {
		return ioFailure(err, "writing %s", path)
	}
	if err = f.Sync(); err != nil {
		return ioFailure(err, "syncing %s", path)
	}
	if err = f.Close(); err != nil {
		return ioFailure(err, "closing %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return ioFailure(err, "replacing %s", path)
	}
	return nil
}
