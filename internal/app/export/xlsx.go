package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/pkg/logger"
)

// WriteXLSX writes the whole dataset into a single workbook, one sheet per
// table, and returns the path of the file written.
func WriteXLSX(ds *generator.Dataset, dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables(ds) {
		if i == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
				return "", fmt.Errorf("rename sheet %s: %w", t.Name, err)
			}
		} else {
			if _, err := f.NewSheet(t.Name); err != nil {
				return "", fmt.Errorf("create sheet %s: %w", t.Name, err)
			}
		}

		if err := writeSheet(f, t); err != nil {
			return "", fmt.Errorf("write sheet %s: %w", t.Name, err)
		}
	}

	path := filepath.Join(dir, "pakistan_sales_data.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	logger.Info("Exported XLSX workbook", map[string]interface{}{
		"file":   path,
		"sheets": len(tables(ds)),
	})
	return path, nil
}

func writeSheet(f *excelize.File, t table) error {
	if err := f.SetSheetRow(t.Name, "A1", &t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
