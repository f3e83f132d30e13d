package source

import (
	"golang.org/x/xerrors"

	"funpay-normalizer/internal/ports"
)

// MemorySource реализует интерфейс DataSource поверх уже загруженной выгрузки.
type MemorySource struct {
	name string
	data []byte
}

// NewMemorySource создает новый экземпляр MemorySource.
func NewMemorySource(name string, data []byte) ports.DataSource {
	return &MemorySource{name: name, data: data}
}

// Name реализует интерфейс DataSource.
func (s *MemorySource) Name() string {
	return s.name
}

// Fetch возвращает копию данных, чтобы разбор не изменял исходный срез.
func (s *MemorySource) Fetch() ([]byte, error) {
	if s.data == nil {
		return nil, xerrors.Errorf("источник %q: данные не установлены", s.name)
	}
	return append([]byte(nil), s.data...), nil
}
