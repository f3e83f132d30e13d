package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"funpay-normalizer/internal/domain"
)

func TestClassifyBadge(t *testing.T) {
	testCases := []struct {
		name     string
		cssClass string
		expected domain.BadgeCategory
	}{
		{"banned", "label label-danger", domain.BadgeBanned},
		{"notifications", "chat-msg-author-label label label-primary", domain.BadgeSystemNotification},
		{"support", "chat-msg-author-label label label-success", domain.BadgeSupportOrArbitration},
		{"auto issue", "chat-msg-author-label label label-default", domain.BadgeAutoIssued},
		{"bare class", "label-success", domain.BadgeSupportOrArbitration},
		{"unknown", "some_another_css_class", domain.BadgeUnknown},
		{"empty", "", domain.BadgeUnknown},
		{"modifier suffix", "label label-success-lg", domain.BadgeSupportOrArbitration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyBadge(tc.cssClass))
		})
	}
}

func TestClassifyBadgePriority(t *testing.T) {
	t.Run("banned побеждает support независимо от порядка классов", func(t *testing.T) {
		assert.Equal(t, domain.BadgeBanned, ClassifyBadge("label-success label-danger"))
		assert.Equal(t, domain.BadgeBanned, ClassifyBadge("label-danger label-success"))
	})

	t.Run("notifications побеждает auto issue", func(t *testing.T) {
		assert.Equal(t, domain.BadgeSystemNotification, ClassifyBadge("label-default label-primary"))
	})

	t.Run("support побеждает auto issue", func(t *testing.T) {
		assert.Equal(t, domain.BadgeSupportOrArbitration, ClassifyBadge("label-default label-success"))
	})

	t.Run("результат воспроизводим", func(t *testing.T) {
		const css = "label label-default label-success label-primary label-danger"
		for i := 0; i < 10; i++ {
			assert.Equal(t, domain.BadgeBanned, ClassifyBadge(css))
		}
	})

	t.Run("таблица в порядке приоритета", func(t *testing.T) {
		var order []domain.BadgeCategory
		for _, m := range badgeMarkers {
			order = append(order, m.value)
		}
		assert.Equal(t, []domain.BadgeCategory{
			domain.BadgeBanned,
			domain.BadgeSystemNotification,
			domain.BadgeSupportOrArbitration,
			domain.BadgeAutoIssued,
		}, order)
	})
}

func TestBadgeClassifier(t *testing.T) {
	c := NewBadgeClassifier()
	assert.NotNil(t, c)
	assert.Equal(t, domain.BadgeAutoIssued, c.Classify("label label-default"))
	assert.Equal(t, domain.BadgeUnknown, c.Classify("label label-info"))
}
