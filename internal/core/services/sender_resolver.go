package services

import (
	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

// SenderResolverImpl реализует интерфейс SenderResolver.
type SenderResolverImpl struct {
	classifier ports.BadgeClassifier
}

// NewSenderResolver создает резолвер, определяющий категорию бейджа через classifier.
func NewSenderResolver(classifier ports.BadgeClassifier) ports.SenderResolver {
	return &SenderResolverImpl{classifier: classifier}
}

// Resolve заполняет отправителя и бейдж у незаголовочных сообщений значениями
// последнего заголовочного сообщения. Срез изменяется на месте.
//
// Сообщения должны быть отсортированы по ID, а первое из них должно быть
// заголовочным. Это не проверяется: незаголовочные сообщения до первого
// заголовка сохраняют значения, полученные от экстрактора.
//
// Бейдж автовыдачи относится только к своему сообщению и дальше не переносится.
// Остальные бейджи принадлежат отправителю и переносятся на его следующие сообщения.
func (r *SenderResolverImpl) Resolve(messages []domain.ChatMessage) {
	var (
		senderID   *int64
		senderName *string
		badge      *domain.Badge

		seenHeading bool
	)

	for i := range messages {
		msg := &messages[i]
		if msg.IsHeading {
			seenHeading = true
			senderID = msg.SenderID
			senderName = msg.SenderName
			badge = msg.Badge
			if badge != nil && r.category(badge) == domain.BadgeAutoIssued {
				badge = nil
			}
			continue
		}
		if !seenHeading {
			continue
		}

		msg.SenderID = clonePtr(senderID)
		msg.SenderName = clonePtr(senderName)
		msg.Badge = clonePtr(badge)
	}
}

func (r *SenderResolverImpl) category(b *domain.Badge) domain.BadgeCategory {
	if b.Category != "" {
		return b.Category
	}
	return r.classifier.Classify(b.CSSClass)
}

// ResolveSenders вызывает резолвер со стандартной таблицей бейджей.
func ResolveSenders(messages []domain.ChatMessage) {
	NewSenderResolver(NewBadgeClassifier()).Resolve(messages)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
