package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Instant хранит абсолютный момент времени в секундах от эпохи (UTC).
type Instant int64

// Time возвращает момент как time.Time в UTC.
func (i Instant) Time() time.Time {
	return time.Unix(int64(i), 0).UTC()
}

// InstantOf преобразует time.Time в Instant, отбрасывая доли секунды.
func InstantOf(t time.Time) Instant {
	return Instant(t.Unix())
}

// Currency идентифицирует валюту.
type Currency string

const (
	CurrencyUnknown Currency = ""
	CurrencyRUB     Currency = "RUB"
	CurrencyUSD     Currency = "USD"
	CurrencyEUR     Currency = "EUR"
)

// MonetaryAmount хранит денежную сумму вместе с символом валюты в том виде,
// в котором он встретился в тексте.
type MonetaryAmount struct {
	Magnitude float64 `json:"magnitude"`
	Symbol    string  `json:"currency_symbol"`

	exact decimal.Decimal
}

// NewMonetaryAmount создает сумму из точного десятичного значения.
func NewMonetaryAmount(value decimal.Decimal, symbol string) MonetaryAmount {
	return MonetaryAmount{
		Magnitude: value.InexactFloat64(),
		Symbol:    symbol,
		exact:     value,
	}
}

// Decimal возвращает точное значение суммы. Для значений, собранных
// вручную через литерал структуры, используется Magnitude.
func (m MonetaryAmount) Decimal() decimal.Decimal {
	if m.exact.IsZero() && m.Magnitude != 0 {
		return decimal.NewFromFloat(m.Magnitude)
	}
	return m.exact
}

// Equal сравнивает суммы по значению и символу.
func (m MonetaryAmount) Equal(other MonetaryAmount) bool {
	return m.Symbol == other.Symbol && m.Decimal().Equal(other.Decimal())
}

// BadgeCategory задает категорию бейджа, определяемую по CSS-классу.
type BadgeCategory string

const (
	BadgeBanned               BadgeCategory = "banned"
	BadgeSystemNotification   BadgeCategory = "system_notification"
	BadgeSupportOrArbitration BadgeCategory = "support"
	BadgeAutoIssued           BadgeCategory = "auto_issued"
	BadgeUnknown              BadgeCategory = "unknown"
)

// Badge хранит бейдж пользователя рядом с сообщением или в профиле.
type Badge struct {
	Text     string        `json:"text"`
	CSSClass string        `json:"css_class"`
	Category BadgeCategory `json:"category"`
}

// ErrInvalidMessageBody возвращается, если у сообщения нет ни текста,
// ни изображения, либо есть оба сразу.
var ErrInvalidMessageBody = errors.New("message body must contain exactly one of text or image_url")

// MessageBody хранит содержимое сообщения: текст или ссылку на изображение.
type MessageBody struct {
	Text     *string `json:"text,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// TextBody создает текстовое содержимое.
func TextBody(text string) MessageBody {
	return MessageBody{Text: &text}
}

// ImageBody создает содержимое-изображение.
func ImageBody(url string) MessageBody {
	return MessageBody{ImageURL: &url}
}

// Validate проверяет, что задано ровно одно из полей.
func (b MessageBody) Validate() error {
	if (b.Text == nil) == (b.ImageURL == nil) {
		return ErrInvalidMessageBody
	}
	return nil
}

// ChatMessage представляет одно сообщение чата.
//
// SenderID, SenderName и Badge заполняются экстрактором только у
// заголовочных сообщений. У остальных их восстанавливает SenderResolver.
type ChatMessage struct {
	ID         int64       `json:"id"`
	IsHeading  bool        `json:"is_heading"`
	SenderID   *int64      `json:"sender_id,omitempty"`
	SenderName *string     `json:"sender_name,omitempty"`
	Badge      *Badge      `json:"badge,omitempty"`
	SentAtText *string     `json:"sent_at_text,omitempty"`
	SentAt     *Instant    `json:"sent_at,omitempty"`
	Body       MessageBody `json:"body"`
}

// OrderStatus задает статус заказа, определяемый по CSS-классу.
type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRefunded  OrderStatus = "refunded"
	OrderStatusUnknown   OrderStatus = "unknown"
)

// TransactionStatus задает статус транзакции на странице баланса.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionCancelled TransactionStatus = "cancelled"
	TransactionUnknown   TransactionStatus = "unknown"
)

// SubcategoryType задает тип подкатегории, определяемый по URL.
type SubcategoryType string

const (
	SubcategoryCommon   SubcategoryType = "lots"
	SubcategoryCurrency SubcategoryType = "chips"
	SubcategoryUnknown  SubcategoryType = "unknown"
)

// PaymentMethod задает способ оплаты или вывода средств.
type PaymentMethod string

const (
	PaymentQIWI          PaymentMethod = "qiwi"
	PaymentYandex        PaymentMethod = "yandex"
	PaymentFPS           PaymentMethod = "fps"
	PaymentWebMoneyWME   PaymentMethod = "webmoney_wme"
	PaymentWebMoneyWMP   PaymentMethod = "webmoney_wmp"
	PaymentWebMoneyWMR   PaymentMethod = "webmoney_wmr"
	PaymentWebMoneyWMZ   PaymentMethod = "webmoney_wmz"
	PaymentWebMoneyOther PaymentMethod = "webmoney_unknown"
	PaymentCardRUB       PaymentMethod = "card_rub"
	PaymentCardUSD       PaymentMethod = "card_usd"
	PaymentCardEUR       PaymentMethod = "card_eur"
	PaymentCardUAH       PaymentMethod = "card_uah"
	PaymentCardOther     PaymentMethod = "card_unknown"
	PaymentMobile        PaymentMethod = "mobile"
	PaymentApple         PaymentMethod = "apple"
	PaymentMastercard    PaymentMethod = "mastercard"
	PaymentVisa          PaymentMethod = "visa"
	PaymentGoogle        PaymentMethod = "google"
	PaymentFunPayBalance PaymentMethod = "funpay"
	PaymentLitecoin      PaymentMethod = "litecoin"
	PaymentBinance       PaymentMethod = "binance"
	PaymentBinanceUSDT   PaymentMethod = "binance_usdt"
	PaymentBinanceUSDC   PaymentMethod = "binance_usdc"
	PaymentPayPal        PaymentMethod = "paypal"
	PaymentUSDTTRC       PaymentMethod = "usdt_trc"
	PaymentMethodUnknown PaymentMethod = "unknown"
)
