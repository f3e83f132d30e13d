package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstant(t *testing.T) {
	t.Run("Преобразование в time.Time и обратно", func(t *testing.T) {
		moment := time.Date(2022, 9, 10, 13, 34, 0, 0, time.UTC)
		instant := InstantOf(moment)

		assert.Equal(t, Instant(1662816840), instant)
		assert.Equal(t, moment, instant.Time())
	})

	t.Run("Доли секунды отбрасываются, зона приводится к UTC", func(t *testing.T) {
		msk := time.FixedZone("MSK", 3*60*60)
		instant := InstantOf(time.Date(2022, 9, 10, 16, 34, 0, 999_000_000, msk))

		assert.Equal(t, Instant(1662816840), instant)
		assert.Equal(t, time.UTC, instant.Time().Location())
	})
}

func TestMessageBody(t *testing.T) {
	t.Run("Ровно одно поле допустимо", func(t *testing.T) {
		assert.NoError(t, TextBody("hello").Validate())
		assert.NoError(t, ImageBody("https://sfunpay.com/s/chat/img.jpg").Validate())
		assert.NoError(t, TextBody("").Validate(), "пустой текст все равно текст")
	})

	t.Run("Ни одного или оба поля недопустимы", func(t *testing.T) {
		assert.ErrorIs(t, MessageBody{}.Validate(), ErrInvalidMessageBody)

		text, url := "hello", "https://sfunpay.com/s/chat/img.jpg"
		assert.ErrorIs(t, MessageBody{Text: &text, ImageURL: &url}.Validate(), ErrInvalidMessageBody)
	})
}

func TestMonetaryAmount(t *testing.T) {
	t.Run("Точное значение сохраняется", func(t *testing.T) {
		amount := NewMonetaryAmount(decimal.RequireFromString("1234567.01"), "₽")

		assert.Equal(t, 1234567.01, amount.Magnitude)
		assert.Equal(t, "1234567.01", amount.Decimal().String())
	})

	t.Run("Без точного значения используется Magnitude", func(t *testing.T) {
		amount := MonetaryAmount{Magnitude: -12.5, Symbol: "$"}
		assert.True(t, amount.Decimal().Equal(decimal.RequireFromString("-12.5")))
	})

	t.Run("Сравнение учитывает символ", func(t *testing.T) {
		a := NewMonetaryAmount(decimal.RequireFromString("12.50"), "€")
		b := NewMonetaryAmount(decimal.RequireFromString("12.5"), "€")
		c := NewMonetaryAmount(decimal.RequireFromString("12.5"), "$")

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})

	t.Run("JSON содержит только значение и символ", func(t *testing.T) {
		data, err := json.Marshal(NewMonetaryAmount(decimal.RequireFromString("-150"), "₽"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"magnitude": -150, "currency_symbol": "₽"}`, string(data))
	})
}

func TestChatMessageJSON(t *testing.T) {
	at := InstantOf(time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC))
	msg := ChatMessage{
		ID:         2,
		SenderID:   new(int64),
		Badge:      &Badge{Text: "поддержка", CSSClass: "label label-success", Category: BadgeSupportOrArbitration},
		SentAt:     &at,
		SentAtText: nil,
		Body:       TextBody("hi"),
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 2,
		"is_heading": false,
		"sender_id": 0,
		"badge": {"text": "поддержка", "css_class": "label label-success", "category": "support"},
		"sent_at": 1749945540,
		"body": {"text": "hi"}
	}`, string(data))
}
