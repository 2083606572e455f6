// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lottopick/internal/logging"
	"github.com/tomtom215/lottopick/internal/metrics"
	"github.com/tomtom215/lottopick/internal/models"
)

var (
	// ErrDataUnavailable is returned when analysis is requested but no draws are stored.
	ErrDataUnavailable = errors.New("no draw history available")

	// ErrCorruptRecord is returned when a stored line cannot be read as a draw.
	ErrCorruptRecord = errors.New("corrupt history record")
)

// Store reads and writes the draw history file.
// Methods are safe for concurrent use within one process.
type Store struct {
	path   string
	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewStore creates a Store backed by the file at path. The file need not exist.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		logger: logging.WithComponent("history"),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all persisted draws, newest first.
// A missing file yields an empty History and no error.
func (s *Store) Load() (models.History, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, err := s.load()
	if err != nil {
		return nil, err
	}
	metrics.HistoryDraws.Set(float64(len(h)))
	return h, nil
}

func (s *Store) load() (models.History, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.History{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", s.path, err)
	}
	defer f.Close()

	return readDraws(f)
}

// readDraws parses CSV records into draws. Only the first DrawSize fields
// of each record are used.
func readDraws(r io.Reader) (models.History, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	h := models.History{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
		}
		line, _ := cr.FieldPos(0)
		if len(record) < models.DrawSize {
			return nil, fmt.Errorf("%w: line %d: want %d fields, got %d",
				ErrCorruptRecord, line, models.DrawSize, len(record))
		}

		nums := make([]int, models.DrawSize)
		for i := 0; i < models.DrawSize; i++ {
			n, convErr := strconv.Atoi(strings.TrimSpace(record[i]))
			if convErr != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %q is not a number",
					ErrCorruptRecord, line, i+1, record[i])
			}
			nums[i] = n
		}

		d, drawErr := models.NewDraw(nums)
		if drawErr != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptRecord, line, drawErr)
		}
		h = append(h, d)
	}
	return h, nil
}

// Save overwrites the history file with h, newest first.
// The write goes to a temporary file in the same directory and is renamed
// into place so a failed write never truncates the existing history.
func (s *Store) Save(h models.History) error {
	for i, d := range h {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("refusing to save draw %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err := writeDraws(tmp, h); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close history file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("replace history file: %w", err)
	}

	metrics.HistoryDraws.Set(float64(len(h)))
	s.logger.Debug().Str("path", s.path).Int("draws", len(h)).Msg("History saved")
	return nil
}

func writeDraws(w io.Writer, h models.History) error {
	cw := csv.NewWriter(w)
	record := make([]string, models.DrawSize)
	for _, d := range h {
		for i, n := range d {
			record[i] = strconv.Itoa(n)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write history record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush history: %w", err)
	}
	return nil
}

// AppendCount returns the number of draws currently persisted.
func (s *Store) AppendCount() (int, error) {
	h, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(h), nil
}

// LoadForAnalysis loads the history and fails with ErrDataUnavailable when it is empty.
func (s *Store) LoadForAnalysis() (models.History, error) {
	h, err := s.Load()
	if err != nil {
		return nil, err
	}
	if len(h) == 0 {
		return nil, fmt.Errorf("%w in %s: run sync first", ErrDataUnavailable, s.path)
	}
	return h, nil
}

// Version identifies the current contents of the history file by size and
// modification time. It changes whenever Save replaces the file; a missing
// file has the version "absent".
func (s *Store) Version() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "absent", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat history file: %w", err)
	}
	return fmt.Sprintf("%d:%d", info.Size(), info.ModTime().UnixNano()), nil
}
