package vectorformats

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpfaulkner/dct-golden/core"
)

const (
	DefaultVerilogFilename = "tb_vectors.vh"
	DefaultJSONFilename    = "test_vectors.json"
)

// ErrExport marks a failure to write the vector files. It wraps the
// underlying I/O error.
var ErrExport = errors.New("vectorformats: export failed")

type exportConfig struct {
	verilogFilename string
	jsonFilename    string
}

type ExportOption func(e *exportConfig)

func WithVerilogFilename(name string) ExportOption {
	return func(e *exportConfig) {
		e.verilogFilename = name
	}
}

func WithJSONFilename(name string) ExportOption {
	return func(e *exportConfig) {
		e.jsonFilename = name
	}
}

type rendered struct {
	path   string
	data   []byte
	tmp    string
	backup string
}

// rename is replaced in tests to fail specific moves.
var rename = os.Rename

// Export writes both vector files into dir. Both are rendered in memory first
// and written to temporary files next to their targets. Existing targets are
// then moved aside and the new files renamed into place. If any step fails the
// previous files are restored, so a failed export leaves dir as it was.
func Export(dir string, cases []core.GoldenCase, opts ...ExportOption) error {
	cfg := exportConfig{
		verilogFilename: DefaultVerilogFilename,
		jsonFilename:    DefaultJSONFilename,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var vh, js bytes.Buffer
	if err := WriteVerilog(&vh, cases); err != nil {
		return err
	}
	if err := WriteJSON(&js, cases); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	files := []*rendered{
		{path: filepath.Join(dir, cfg.verilogFilename), data: vh.Bytes()},
		{path: filepath.Join(dir, cfg.jsonFilename), data: js.Bytes()},
	}
	defer func() {
		for _, f := range files {
			if f.tmp != "" {
				os.Remove(f.tmp)
			}
		}
	}()

	for _, f := range files {
		tmp, err := writeTemp(f.path, f.data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExport, err)
		}
		f.tmp = tmp
	}

	for _, f := range files {
		if err := moveAside(f); err != nil {
			restore(files, 0)
			return fmt.Errorf("%w: %w", ErrExport, err)
		}
	}

	for i, f := range files {
		if err := rename(f.tmp, f.path); err != nil {
			restore(files, i)
			return fmt.Errorf("%w: %w", ErrExport, err)
		}
		f.tmp = ""
	}

	for _, f := range files {
		if f.backup != "" {
			os.Remove(f.backup)
		}
	}
	return nil
}

// moveAside renames an existing target to a backup next to it. A missing
// target needs no backup.
func moveAside(f *rendered) error {
	if _, err := os.Lstat(f.path); errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	backup := f.tmp + ".old"
	if err := rename(f.path, backup); err != nil {
		return err
	}
	f.backup = backup
	return nil
}

// restore undoes a partial export: the first installed files are removed and
// every backup is moved back to its target.
func restore(files []*rendered, installed int) {
	for _, f := range files[:installed] {
		os.Remove(f.path)
	}
	for _, f := range files {
		if f.backup == "" {
			continue
		}
		if err := rename(f.backup, f.path); err == nil {
			f.backup = ""
		}
	}
}

func writeTemp(path string, data []byte) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	return name, nil
}
