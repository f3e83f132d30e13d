package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"funpay-normalizer/internal/domain"
)

type mockBadgeClassifier struct{ mock.Mock }

func (m *mockBadgeClassifier) Classify(cssClass string) domain.BadgeCategory {
	args := m.Called(cssClass)
	return args.Get(0).(domain.BadgeCategory)
}

func ptr[T any](v T) *T { return &v }

var (
	supportBadge = domain.Badge{Text: "поддержка", CSSClass: "chat-msg-author-label label label-success"}
	autoBadge    = domain.Badge{Text: "автоответ", CSSClass: "chat-msg-author-label label label-default"}
	bannedBadge  = domain.Badge{Text: "заблокирован", CSSClass: "label label-danger"}
)

func heading(id, senderID int64, name string, badge *domain.Badge) domain.ChatMessage {
	return domain.ChatMessage{
		ID:         id,
		IsHeading:  true,
		SenderID:   ptr(senderID),
		SenderName: ptr(name),
		Badge:      badge,
		SentAtText: ptr("01.01.77"),
		Body:       domain.TextBody("MessageText"),
	}
}

func plain(id int64) domain.ChatMessage {
	return domain.ChatMessage{ID: id, Body: domain.TextBody("MessageText")}
}

func TestResolveSenders(t *testing.T) {
	t.Run("незаголовочное сообщение наследует отправителя и бейдж", func(t *testing.T) {
		messages := []domain.ChatMessage{
			heading(1, 1, "SomeUser1", ptr(supportBadge)),
			plain(2),
		}
		original := messages[0]

		ResolveSenders(messages)

		assert.Equal(t, original, messages[0], "заголовочное сообщение не меняется")
		require.NotNil(t, messages[1].SenderID)
		assert.Equal(t, int64(1), *messages[1].SenderID)
		assert.Equal(t, "SomeUser1", *messages[1].SenderName)
		assert.Equal(t, &supportBadge, messages[1].Badge)
		assert.Nil(t, messages[1].SentAtText, "дата отправки не переносится")
	})

	t.Run("бейдж автовыдачи не переносится", func(t *testing.T) {
		messages := []domain.ChatMessage{
			heading(1, 10, "A", ptr(supportBadge)),
			plain(2),
			heading(3, 20, "B", ptr(autoBadge)),
			plain(4),
		}

		ResolveSenders(messages)

		assert.Equal(t, int64(10), *messages[1].SenderID)
		assert.Equal(t, "A", *messages[1].SenderName)
		require.NotNil(t, messages[1].Badge)
		assert.Equal(t, supportBadge, *messages[1].Badge)

		assert.Equal(t, int64(20), *messages[3].SenderID)
		assert.Equal(t, "B", *messages[3].SenderName)
		assert.Nil(t, messages[3].Badge)

		require.NotNil(t, messages[2].Badge, "у самого сообщения автовыдачи бейдж остается")
		assert.Equal(t, autoBadge, *messages[2].Badge)
	})

	t.Run("новый заголовок без бейджа сбрасывает бейдж", func(t *testing.T) {
		messages := []domain.ChatMessage{
			heading(1, 1, "Support", ptr(bannedBadge)),
			plain(2),
			heading(3, 2, "Buyer", nil),
			plain(4),
			plain(5),
		}

		ResolveSenders(messages)

		assert.Equal(t, bannedBadge, *messages[1].Badge)
		for _, i := range []int{3, 4} {
			assert.Equal(t, int64(2), *messages[i].SenderID)
			assert.Equal(t, "Buyer", *messages[i].SenderName)
			assert.Nil(t, messages[i].Badge)
		}
	})

	t.Run("значения копируются, а не разделяются", func(t *testing.T) {
		messages := []domain.ChatMessage{
			heading(1, 1, "A", ptr(supportBadge)),
			plain(2),
			plain(3),
		}

		ResolveSenders(messages)

		messages[1].Badge.Text = "изменено"
		*messages[1].SenderID = 999
		*messages[1].SenderName = "изменено"

		assert.Equal(t, "поддержка", messages[0].Badge.Text)
		assert.Equal(t, "поддержка", messages[2].Badge.Text)
		assert.Equal(t, int64(1), *messages[0].SenderID)
		assert.Equal(t, int64(1), *messages[2].SenderID)
		assert.Equal(t, "A", *messages[2].SenderName)
	})

	t.Run("повторный запуск ничего не меняет", func(t *testing.T) {
		messages := []domain.ChatMessage{
			heading(1, 10, "A", ptr(supportBadge)),
			plain(2),
			heading(3, 20, "B", ptr(autoBadge)),
			plain(4),
			plain(5),
		}

		ResolveSenders(messages)
		once := make([]domain.ChatMessage, len(messages))
		copy(once, messages)

		ResolveSenders(messages)
		assert.Equal(t, once, messages)
	})

	t.Run("сообщения до первого заголовка сохраняют данные экстрактора", func(t *testing.T) {
		orphan := domain.ChatMessage{ID: 1, SenderID: ptr(int64(7)), SenderName: ptr("X"), Badge: ptr(supportBadge)}
		messages := []domain.ChatMessage{
			orphan,
			heading(2, 5, "A", nil),
			plain(3),
		}

		ResolveSenders(messages)

		require.NotNil(t, messages[0].SenderID)
		assert.Equal(t, int64(7), *messages[0].SenderID)
		require.NotNil(t, messages[0].SenderName)
		assert.Equal(t, "X", *messages[0].SenderName)
		assert.Equal(t, &supportBadge, messages[0].Badge)
		assert.Equal(t, int64(5), *messages[2].SenderID)
	})

	t.Run("пустые поля до первого заголовка не заполняются", func(t *testing.T) {
		messages := []domain.ChatMessage{
			plain(1),
			heading(2, 5, "A", ptr(supportBadge)),
		}

		ResolveSenders(messages)

		assert.Nil(t, messages[0].SenderID)
		assert.Nil(t, messages[0].SenderName)
		assert.Nil(t, messages[0].Badge)
	})

	t.Run("пустой срез", func(t *testing.T) {
		assert.NotPanics(t, func() { ResolveSenders(nil) })
	})
}

func TestSenderResolverUsesClassifier(t *testing.T) {
	t.Run("категория определяется по CSS-классу, если не задана", func(t *testing.T) {
		classifier := new(mockBadgeClassifier)
		classifier.On("Classify", "custom-auto").Return(domain.BadgeAutoIssued).Once()

		messages := []domain.ChatMessage{
			heading(1, 1, "Bot", &domain.Badge{Text: "auto", CSSClass: "custom-auto"}),
			plain(2),
		}
		NewSenderResolver(classifier).Resolve(messages)

		assert.Nil(t, messages[1].Badge)
		classifier.AssertExpectations(t)
	})

	t.Run("заданная категория используется без классификатора", func(t *testing.T) {
		classifier := new(mockBadgeClassifier)

		badge := domain.Badge{Text: "поддержка", CSSClass: "x", Category: domain.BadgeSupportOrArbitration}
		messages := []domain.ChatMessage{
			heading(1, 1, "Support", &badge),
			plain(2),
		}
		NewSenderResolver(classifier).Resolve(messages)

		require.NotNil(t, messages[1].Badge)
		assert.Equal(t, badge, *messages[1].Badge)
		classifier.AssertNotCalled(t, "Classify", mock.Anything)
	})
}
