package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ResultWriter appends one CSV row per successful re-order across the whole
// run: original order number, new order number, comma-joined SKU list.
type ResultWriter struct {
	file   *os.File
	writer *csv.Writer
}

func NewResultWriter(path string) (*ResultWriter, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open result csv %s: %w", path, err)
	}
	return &ResultWriter{
		file:   file,
		writer: csv.NewWriter(file),
	}, nil
}

func (w *ResultWriter) Append(orderNumber, newOrderNumber string, skus []string) error {
	record := []string{orderNumber, newOrderNumber, strings.Join(skus, ",")}
	if err := w.writer.Write(record); err != nil {
		return fmt.Errorf("append result row for %s: %w", orderNumber, err)
	}
	w.writer.Flush()
	return w.writer.Error()
}

func (w *ResultWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
