// Package importer reads delimited-text and spreadsheet export files into
// raw row data, absorbing the encoding and layout variance of real exports.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader converts one file format into raw rows.
type Loader interface {
	Load(name string, data []byte) ([][]string, error)
	Extensions() []string
}

// Registry holds loaders keyed by file extension.
type Registry struct {
	loaders map[string]Loader
}

// FileInfo describes a loadable file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register adds a loader. Panics on duplicate extension.
func (r *Registry) Register(l Loader) {
	for _, ext := range l.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.loaders[key]; ok {
			panic("duplicate loader extension: " + key)
		}
		r.loaders[key] = l
	}
}

// Get returns the loader for a file name's extension, or nil.
func (r *Registry) Get(name string) Loader {
	return r.loaders[strings.ToLower(filepath.Ext(name))]
}

// DefaultRegistry returns a registry with all built-in loaders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVLoader{})
	r.Register(&ExcelLoader{})
	return r
}

// ReadRows loads a file into raw rows, picking the loader by extension.
func (r *Registry) ReadRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return r.ReadRowsBytes(filepath.Base(path), data)
}

// ReadRowsBytes loads already-read file content into raw rows.
func (r *Registry) ReadRowsBytes(name string, data []byte) ([][]string, error) {
	l := r.Get(name)
	if l == nil {
		return nil, fmt.Errorf("unsupported file type: %s", name)
	}
	rows, err := l.Load(name, data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return rows, nil
}

// Scan returns loadable files directly inside dir, skipping subdirectories.
func (r *Registry) Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading dir %s: %w", dir, err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if r.Get(e.Name()) == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
