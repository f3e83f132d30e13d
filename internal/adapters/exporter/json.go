package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

// JSONExporter пишет нормализованную выгрузку в формате JSON.
type JSONExporter struct {
	w      io.Writer
	indent bool
}

// NewJSONExporter создает новый экземпляр JSONExporter.
func NewJSONExporter(w io.Writer, indent bool) ports.Exporter {
	return &JSONExporter{w: w, indent: indent}
}

func (e *JSONExporter) Export(page *domain.NormalizedPage) error {
	enc := json.NewEncoder(e.w)
	enc.SetEscapeHTML(false)
	if e.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(page); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
