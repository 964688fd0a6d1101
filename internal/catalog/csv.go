package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM is stripped from catalog uploads; spreadsheet exports routinely
// prepend it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a catalog CSV into rows keyed by the header line. The
// header order is returned so importers can report missing or unexpected
// columns. Short records are tolerated; missing trailing fields read as
// blank.
func ReadCSV(r io.Reader) (headers []string, rows []Row, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err = reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return headers, rows, fmt.Errorf("failed to read catalog record: %w", err)
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}
