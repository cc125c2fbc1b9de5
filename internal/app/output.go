package app

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

const (
	outputFilePerm = 0o644
	outputBufSize  = 64 * 1024
)

// writeFileAtomic creates dest from whatever render writes. Output goes to a
// temporary file in the destination directory that is renamed over dest
// only after render succeeds, so a failed input never leaves a partial file.
// The destination directory must already exist.
func writeFileAtomic(dest string, render func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".rowtable-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()
	if err := tmp.Chmod(outputFilePerm); err != nil {
		return err
	}

	bw := bufio.NewWriterSize(tmp, outputBufSize)
	if err := render(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, dest)
}
