package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/pkg/logger"
)

// WriteCSV persists every generated table, including the flattened sales
// view, as one delimited file per table under dir. Each file starts with a
// header row of column names. Returns the paths written, in table order.
func WriteCSV(ds *generator.Dataset, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var paths []string
	for _, t := range tables(ds) {
		path := filepath.Join(dir, fmt.Sprintf("pakistan_%s.csv", t.Name))
		if err := writeCSVFile(path, t); err != nil {
			return nil, fmt.Errorf("export %s: %w", t.Name, err)
		}

		logger.Info("Exported table", map[string]interface{}{
			"table": t.Name,
			"rows":  len(t.Rows),
			"file":  path,
		})
		paths = append(paths, path)
	}

	return paths, nil
}

func writeCSVFile(path string, t table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}
