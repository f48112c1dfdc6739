package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	PeriodColumn string // Column name for period labels (optional)
	ValueColumn  string // Column name for demand values (default: "demand")
	HasHeader    bool   // Whether CSV has header row (default: true)
	Delimiter    rune   // Field delimiter (default: ',')
	SkipRows     int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "demand",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a demand series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a demand series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, periodIdx := -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "demand" || h == "value" || h == "y")):
				valueIdx = i
			case opts.PeriodColumn != "" && h == opts.PeriodColumn:
				periodIdx = i
			case h == "period" || h == "month" || h == "Month":
				if periodIdx == -1 {
					periodIdx = i
				}
			}
		}

		// Default to last column if the value column was not found
		if valueIdx == -1 {
			valueIdx = len(header) - 1
		}
	} else {
		// No header - assume period then value
		periodIdx = 0
		valueIdx = 1
	}

	var values []float64
	var periods []int

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // Skip invalid values
		}
		values = append(values, val)

		if periodIdx >= 0 && periodIdx < len(record) {
			pStr := strings.TrimSpace(strings.Trim(record[periodIdx], "\""))
			if p, err := strconv.Atoi(pStr); err == nil {
				periods = append(periods, p)
			}
		}
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(periods) == len(values) {
		return &Series{
			Periods: periods,
			Values:  values,
		}, nil
	}

	return New(values), nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// SaveCSV saves a demand series to a CSV file.
func SaveCSV(series *Series, filename string, includePeriod bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	if includePeriod {
		writer.WriteString("period,demand\n")
	} else {
		writer.WriteString("demand\n")
	}

	for i, v := range series.Values {
		if includePeriod {
			if len(series.Periods) == len(series.Values) {
				writer.WriteString(strconv.Itoa(series.Periods[i]))
			} else {
				writer.WriteString(strconv.Itoa(i + 1))
			}
			writer.WriteString(",")
		}
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}
