package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/tileplan/internal/model"
)

// FileSystem is a DocumentProvider backed by a single YAML file.
type FileSystem struct {
	Path string

	mutex sync.Mutex
	doc   *Document
}

// NewFileSystem returns a provider for the file at path, with an empty
// document collected.
func NewFileSystem(path string) *FileSystem {
	return &FileSystem{
		Path: path,
		doc:  NewDocument(),
	}
}

// Put adds a record to the collected document.
func (fs *FileSystem) Put(r model.Record) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	fs.doc.Put(r)
}

// Document returns a copy of the collected document.
func (fs *FileSystem) Document() *Document {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	return fs.doc.Copy()
}

// Reset drops all collected records.
func (fs *FileSystem) Reset() {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	fs.doc = NewDocument()
}

// Read reads and decodes the document from the file.
// The collected document is left untouched.
func (fs *FileSystem) Read() (*Document, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read file '%s' (%w)", fs.Path, err)
	}

	doc := &Document{}
	err = yaml.Unmarshal(data, doc)
	if err != nil {
		return nil, fmt.Errorf("could not decode file '%s' (%w)", fs.Path, err)
	}
	if doc.Version == 0 {
		doc.Version = DocumentVersion
	}

	log.Debug().Str("file", fs.Path).Int("records", doc.Len()).Msg("read document")
	return doc, nil
}

// Write encodes the collected document and writes it to the file, creating
// parent directories as needed.
func (fs *FileSystem) Write() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	buf := bytes.Buffer{}
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fs.doc); err != nil {
		return fmt.Errorf("could not encode document (%w)", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not encode document (%w)", err)
	}

	if dir := filepath.Dir(fs.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory '%s' (%w)", dir, err)
		}
	}
	if err := os.WriteFile(fs.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write file '%s' (%w)", fs.Path, err)
	}

	log.Debug().Str("file", fs.Path).Int("records", fs.doc.Len()).Msg("wrote document")
	return nil
}
