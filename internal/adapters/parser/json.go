package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

// JsonParser реализует интерфейс Parser для разбора JSON-выгрузки экстрактора.
type JsonParser struct {
	strict bool
}

// NewJsonParser создает новый экземпляр JsonParser.
// В строгом режиме неизвестные поля выгрузки считаются ошибкой.
func NewJsonParser(strict bool) ports.Parser {
	return &JsonParser{strict: strict}
}

// Parse преобразует срез байт с JSON в структуру ExtractedPage.
func (p *JsonParser) Parse(data []byte) (*domain.ExtractedPage, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("failed to unmarshal json: пустые данные")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if p.strict {
		dec.DisallowUnknownFields()
	}

	var page domain.ExtractedPage
	if err := dec.Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to unmarshal json: лишние данные после документа")
	}
	return &page, nil
}
