// Package jsonfile provides shared helpers for the whole-file JSON stores.
// Each store keeps its full collection in memory and persists it as a single
// JSON document. Saves go to a temp file in the same directory followed by an
// atomic rename, so a crash mid-write never leaves a truncated store file.
package jsonfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// Load reads the JSON document at path into v.
// A missing file is not an error: Load returns found=false and the caller
// starts with an empty collection. A corrupt or unreadable file returns
// found=false and a *domain.PersistenceError the caller may surface as a
// warning while continuing with an empty collection.
func Load(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, domain.NewPersistenceError("read", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, domain.NewPersistenceError("decode", path, err)
	}

	return true, nil
}

// Save writes v as an indented JSON document to path, creating the parent
// directory as needed. The document is first written to a temp file and then
// renamed over path.
func Save(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewPersistenceError("mkdir", dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return domain.NewPersistenceError("encode", path, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return domain.NewPersistenceError("create temp", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return domain.NewPersistenceError("write", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return domain.NewPersistenceError("sync", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return domain.NewPersistenceError("close", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return domain.NewPersistenceError("rename", path, err)
	}

	return nil
}
