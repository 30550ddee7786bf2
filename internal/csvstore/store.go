// Package csvstore implements the repository contract on plain CSV files,
// the format the office used before the SQLite database and still accepts
// for first-time imports. Every mutation rewrites the whole file through a
// temp-file rename, so a failed write leaves the store untouched.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store holds the directory containing contacts.csv, projects.csv and
// colleagues.csv.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepares a CSV store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(file string) string {
	return filepath.Join(s.dir, file)
}

// readRows returns the data rows of a CSV file, skipping the header. A
// missing file reads as empty.
func (s *Store) readRows(file string, want int) ([][]string, error) {
	f, err := os.Open(s.path(file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var rows [][]string
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		// tolerate short rows from hand-edited files
		for len(rec) < want {
			rec = append(rec, "")
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// writeRows replaces a CSV file with the header and rows, atomically.
func (s *Store) writeRows(file string, header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(s.dir, file+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(file)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", file, err)
	}
	return nil
}
