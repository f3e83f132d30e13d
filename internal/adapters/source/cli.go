package source

import (
	"io"
	"os"

	"golang.org/x/xerrors"

	"funpay-normalizer/internal/ports"
)

// StdinPath задает путь, означающий чтение выгрузки из стандартного ввода.
const StdinPath = "-"

// CliSource реализует интерфейс DataSource для чтения выгрузки из файла,
// указанного в командной строке, или из stdin.
type CliSource struct {
	filePath string
	stdin    io.Reader
}

// NewCliSource создает новый экземпляр CliSource.
func NewCliSource(filePath string) ports.DataSource {
	return &CliSource{filePath: filePath, stdin: os.Stdin}
}

// Name реализует интерфейс DataSource.
func (s *CliSource) Name() string {
	if s.filePath == StdinPath {
		return "stdin"
	}
	return s.filePath
}

// Fetch читает файл по указанному пути и возвращает его содержимое.
func (s *CliSource) Fetch() ([]byte, error) {
	switch s.filePath {
	case "":
		return nil, xerrors.New("не указан путь к файлу")
	case StdinPath:
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, xerrors.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, xerrors.Errorf("failed to read file %s: %w", s.filePath, err)
	}
	return data, nil
}
