package exporter

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"funpay-normalizer/internal/domain"
)

const (
	timeLayout   = "2006-01-02 15:04:05"
	moneyFormat  = "#,###.##"
	notAvailable = "n/a"
)

func senderCell(m domain.ChatMessage) string {
	switch {
	case m.SenderName != nil && m.SenderID != nil:
		return *m.SenderName + " (" + strconv.FormatInt(*m.SenderID, 10) + ")"
	case m.SenderName != nil:
		return *m.SenderName
	case m.SenderID != nil:
		return strconv.FormatInt(*m.SenderID, 10)
	}
	return notAvailable
}

func badgeCell(m domain.ChatMessage) string {
	if m.Badge == nil {
		return ""
	}
	if m.Badge.Text == "" {
		return string(m.Badge.Category)
	}
	return m.Badge.Text + " [" + string(m.Badge.Category) + "]"
}

// sentAtCell показывает нормализованное время, а если его нет, исходный текст
// с пометкой, что он не распознан.
func sentAtCell(m domain.ChatMessage) string {
	if m.SentAt != nil {
		return m.SentAt.Time().Format(timeLayout)
	}
	if m.SentAtText != nil {
		return "? " + *m.SentAtText
	}
	return ""
}

func bodyCell(m domain.ChatMessage) string {
	if m.Body.Text != nil {
		return *m.Body.Text
	}
	if m.Body.ImageURL != nil {
		return "[img] " + *m.Body.ImageURL
	}
	return ""
}

func amountCell(a domain.NormalizedAmount) string {
	return moneyCell(a.Amount)
}

func currencyCell(c domain.Currency) string {
	if c == domain.CurrencyUnknown {
		return notAvailable
	}
	return string(c)
}

func moneyCell(m *domain.MonetaryAmount) string {
	if m == nil {
		return notAvailable
	}
	return humanize.FormatFloat(moneyFormat, m.Magnitude) + " " + m.Symbol
}

// recordDateCell работает как sentAtCell для заказов и транзакций.
func recordDateCell(at *domain.Instant, text *string) string {
	if at != nil {
		return at.Time().Format(timeLayout)
	}
	if text != nil {
		return "? " + *text
	}
	return ""
}
