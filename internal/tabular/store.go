// Package tabular keeps append-mostly tables in local CSV files.
// The first line of each file is the header; columns are addressed by name.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Row maps a column name to its raw cell value.
type Row map[string]string

// Store is a CSV file backed table.
type Store struct {
	path    string
	columns []string
	mu      sync.RWMutex
}

func NewStore(path string, columns []string) *Store {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Store{
		path:    path,
		columns: cols,
	}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Columns() []string {
	cols := make([]string, len(s.columns))
	copy(cols, s.columns)
	return cols
}

// ReadAll returns all rows in file order. A missing file is an empty table.
// Columns missing from the file header read as empty strings.
func (s *Store) ReadAll() ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readRows()
}

// Append adds rows at the end of the table, creating the file if needed.
// It returns the number of rows in the table after the append.
func (s *Store) Append(rows []Row) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readRows()
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return len(existing), nil
	}

	all := append(existing, rows...)
	if err := s.writeRows(all); err != nil {
		return 0, err
	}

	return len(all), nil
}

// DeleteLast removes the last row and returns it with its 1-based position.
// The position is 0 when the table is empty.
func (s *Store) DeleteLast() (Row, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readRows()
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	last := rows[len(rows)-1]
	if err := s.writeRows(rows[:len(rows)-1]); err != nil {
		return nil, 0, err
	}

	return last, len(rows), nil
}

func (s *Store) readRows() ([]Row, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	// fill the columns the file does not know about
	for _, row := range rows {
		for _, col := range s.columns {
			if _, ok := row[col]; !ok {
				row[col] = ""
			}
		}
	}

	return rows, nil
}

// writeRows replaces the file content through a temp file in the same dir.
func (s *Store) writeRows(rows []Row) (err error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := WriteRows(tmp, s.columns, rows); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}

// ReadRows parses CSV with a header line into rows keyed by header names.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	rows := make([]Row, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// WriteRows renders rows as CSV with a header line of the given columns.
func WriteRows(w io.Writer, columns []string, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
