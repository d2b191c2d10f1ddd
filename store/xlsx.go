package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the collection to a single-sheet workbook at path, using
// the same columns as the CSV export. The sheet is named after the data file.
func (s *FileStore[R]) ExportXLSX(path string) (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(s.path)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return 0, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := s.codec.Header()
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, fmt.Errorf("failed to write header row: %w", err)
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		row := s.codec.Row(r)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write row for record %d: %w", r.RecordID(), err)
		}
	}

	out, err := s.fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create workbook %s: %w", path, err)
	}

	err = f.Write(out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close workbook %s: %w", path, closeErr)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write workbook %s: %w", path, err)
	}

	s.log.Debug("exported xlsx", "target", path, "count", len(records))
	return len(records), nil
}

func sheetName(dataPath string) string {
	base := filepath.Base(dataPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." {
		return "Records"
	}
	// Excel limits sheet names to 31 characters.
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
