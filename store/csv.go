package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/josephgoksu/organizer/models"
)

const utf8BOM = "\ufeff"

// ExportCSV writes the collection to the store's CSV path.
func (s *FileStore[R]) ExportCSV() (int, error) {
	if s.csvPath == "" {
		return 0, fmt.Errorf("no CSV path configured for %s", s.path)
	}
	return s.ExportCSVFile(s.csvPath)
}

// ExportCSVFile writes the collection to path. The collection is loaded
// before path is created, so a load failure leaves an existing file intact.
func (s *FileStore[R]) ExportCSVFile(path string) (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}

	f, err := s.fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}

	err = s.writeCSV(f, records)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close CSV file %s: %w", path, closeErr)
	}
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// ExportCSVTo writes the header row followed by one row per record.
func (s *FileStore[R]) ExportCSVTo(w io.Writer) (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}
	if err := s.writeCSV(w, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *FileStore[R]) writeCSV(w io.Writer, records []R) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.codec.Header()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(s.codec.Row(r)); err != nil {
			return fmt.Errorf("failed to write CSV row for record %d: %w", r.RecordID(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.log.Debug("exported csv", "count", len(records))
	return nil
}

// ImportCSV replaces the collection with the contents of the store's CSV path.
func (s *FileStore[R]) ImportCSV() (int, error) {
	if s.csvPath == "" {
		return 0, fmt.Errorf("no CSV path configured for %s", s.path)
	}
	f, err := s.fs.Open(s.csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV file %s: %w", s.csvPath, err)
	}
	defer func() { _ = f.Close() }()

	return s.ImportCSVFrom(f)
}

// ImportCSVFrom reads header-keyed rows and replaces the whole collection
// with them. This is an overwrite, not a merge. Any bad row aborts the
// import before the data file is touched.
func (s *FileStore[R]) ImportCSVFrom(r io.Reader) (int, error) {
	records, err := readCSV(r, s.codec)
	if err != nil {
		return 0, err
	}
	if err := s.Replace(records); err != nil {
		if errors.Is(err, ErrMalformedImport) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}
	s.log.Debug("imported csv", "count", len(records))
	return len(records), nil
}

func readCSV[R models.Record](r io.Reader, codec models.CSVCodec[R]) ([]R, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []R{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedImport, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	records := []R{}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedImport, err)
		}
		line, _ := cr.FieldPos(0)

		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = fields[i]
		}
		rec, err := codec.FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedImport, line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
