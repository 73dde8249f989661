package wallet

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

// Store persists the whole ledger table.
type Store interface {
	// Read returns every entry in file order.
	Read() ([]Entry, error)
	// Write replaces the stored table with entries.
	Write(entries []Entry) error
}

// FileStore is a Store backed by a single ';' separated file.
//
// Write truncates and rewrites the file: there is no locking and no atomic
// rename, the last writer wins.
type FileStore struct {
	path   string
	codec  Codec
	logger *log.Logger
}

// StoreOption configures a FileStore.
type StoreOption func(*FileStore)

// WithLabels sets the category labels written to the file.
func WithLabels(l Labels) StoreOption { return func(s *FileStore) { s.codec.Labels = l } }

// WithAliases adds category labels accepted when reading the file.
func WithAliases(l ...Labels) StoreOption {
	return func(s *FileStore) { s.codec.Aliases = append(s.codec.Aliases, l...) }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) StoreOption { return func(s *FileStore) { s.logger = l } }

// NewFileStore returns a store for path. Call Init to create the file if needed.
func NewFileStore(path string, opts ...StoreOption) *FileStore {
	s := &FileStore{
		path:   path,
		codec:  Codec{Labels: DefaultLabels},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the ledger file path.
func (s *FileStore) Path() string { return s.path }

// Init creates the file with only the header row if it does not exist.
func (s *FileStore) Init() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot access ledger file %q: %w", s.path, err)
	}
	s.logger.Debug("creating empty ledger file", "path", s.path)
	return s.Write(nil)
}

// Read decodes the whole file.
func (s *FileStore) Read() ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	entries, err := s.codec.DecodeEntries(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger file %q: %w", s.path, err)
	}
	s.logger.Debug("ledger read", "path", s.path, "rows", len(entries))
	return entries, nil
}

// Write encodes entries and overwrites the file with them.
func (s *FileStore) Write(entries []Entry) error {
	var buf bytes.Buffer
	if err := s.codec.EncodeEntries(&buf, entries); err != nil {
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", s.path, err)
	}
	s.logger.Debug("ledger written", "path", s.path, "rows", len(entries))
	return nil
}
