package configutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// readLayer decodes one json5 file into dst. A missing or empty file is
// reported through found=false rather than an error.
func readLayer[T any](path string, dst *T) (bool, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	return true, json5.Unmarshal(raw, dst)
}

// ReadConfig loads `<name>` and merges `<base>.local.<ext>` over it, so a
// checked-in config can carry untracked per-machine overrides. Returns
// os.ErrNotExist when neither file is present.
func ReadConfig[T any](name string) (T, error) {
	var out T

	found, err := readLayer(name, &out)
	if err != nil {
		return out, err
	}

	ext := filepath.Ext(name)
	localPath := fmt.Sprintf("%s.local%s", strings.TrimSuffix(name, ext), ext)

	var override T
	foundLocal, err := readLayer(localPath, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if !found && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively walks from the working directory up to the filesystem
// root looking for a config file matching name.
func ReadRecursively[T any](name string) (T, error) {
	var none T

	dir, err := os.Getwd()
	if err != nil {
		return none, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(dir, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return none, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return none, os.ErrNotExist
		}
		dir = parent
	}
}
