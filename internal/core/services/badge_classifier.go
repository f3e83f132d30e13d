package services

import (
	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

// badgeMarkers содержит классы бейджей в порядке приоритета.
// Строка класса может содержать несколько маркеров, побеждает первый.
var badgeMarkers = []marker[domain.BadgeCategory]{
	{"label-danger", domain.BadgeBanned},
	{"label-primary", domain.BadgeSystemNotification},
	{"label-success", domain.BadgeSupportOrArbitration},
	{"label-default", domain.BadgeAutoIssued},
}

// ClassifyBadge определяет категорию бейджа по полной строке CSS-классов.
// Неизвестные классы дают BadgeUnknown.
func ClassifyBadge(cssClass string) domain.BadgeCategory {
	return firstContaining(cssClass, badgeMarkers, domain.BadgeUnknown)
}

// BadgeClassifierImpl реализует интерфейс BadgeClassifier.
type BadgeClassifierImpl struct{}

// NewBadgeClassifier создает новый экземпляр BadgeClassifierImpl.
func NewBadgeClassifier() ports.BadgeClassifier {
	return &BadgeClassifierImpl{}
}

// Classify реализует интерфейс BadgeClassifier.
func (c *BadgeClassifierImpl) Classify(cssClass string) domain.BadgeCategory {
	return ClassifyBadge(cssClass)
}
