package file

import (
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"
)

// readExcelRows reads all rows of the first sheet of an Excel workbook.
func readExcelRows(path string) ([][]string, error) {
	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	log.Printf("[FileSource] %s read in %.2fms (%d rows)", path, float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}
