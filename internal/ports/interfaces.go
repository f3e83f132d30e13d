package ports

import (
	"funpay-normalizer/internal/domain"
)

// DataSource определяет интерфейс для получения выгрузки экстрактора.
type DataSource interface {
	// Name возвращает человекочитаемое имя источника для логов.
	Name() string
	// Fetch загружает данные из источника и возвращает их в виде байтового среза.
	Fetch() ([]byte, error)
}

// Parser определяет интерфейс для разбора выгрузки экстрактора.
type Parser interface {
	Parse(data []byte) (*domain.ExtractedPage, error)
}

// DateNormalizer преобразует текст даты в абсолютный момент.
type DateNormalizer interface {
	Normalize(text string) (domain.Instant, error)
}

// MoneyNormalizer преобразует текст суммы в MonetaryAmount.
// Нераспознанный текст дает ошибку или nil в зависимости от политики.
type MoneyNormalizer interface {
	Normalize(text string) (*domain.MonetaryAmount, error)
}

// BadgeClassifier определяет категорию бейджа по строке CSS-классов.
type BadgeClassifier interface {
	Classify(cssClass string) domain.BadgeCategory
}

// SenderResolver восстанавливает отправителей незаголовочных сообщений.
type SenderResolver interface {
	Resolve(messages []domain.ChatMessage)
}

// Exporter определяет интерфейс для вывода результата.
type Exporter interface {
	Export(page *domain.NormalizedPage) error
}
