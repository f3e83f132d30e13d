package domain

// ExtractedPage является корневой структурой выгрузки экстрактора полей:
// сырые текстовые фрагменты, снятые со страниц.
type ExtractedPage struct {
	Source       string                 `json:"source"`
	Chats        []ExtractedChat        `json:"chats"`
	Amounts      []ExtractedAmount      `json:"amounts"`
	Orders       []ExtractedOrder       `json:"orders,omitempty"`
	Transactions []ExtractedTransaction `json:"transactions,omitempty"`
}

// ExtractedChat хранит историю одного чата в сыром виде.
type ExtractedChat struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Messages []ExtractedMessage `json:"messages"`
}

// ExtractedMessage хранит сообщение в том виде, в котором его отдает экстрактор.
type ExtractedMessage struct {
	ID         int64   `json:"id"`
	IsHeading  bool    `json:"is_heading"`
	SenderID   *int64  `json:"sender_id,omitempty"`
	SenderName *string `json:"sender_name,omitempty"`
	Badge      *Badge  `json:"badge,omitempty"`
	SentAt     *string `json:"sent_at,omitempty"`
	Text       *string `json:"text,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
}

// ExtractedAmount описывает денежное поле страницы (баланс, цена, сумма транзакции).
// Required определяет реакцию на нераспознанный текст: обязательное поле
// останавливает разбор страницы, необязательное просто остается пустым.
type ExtractedAmount struct {
	Field    string `json:"field"`
	Text     string `json:"text"`
	Required bool   `json:"required"`
}

// ExtractedOrder описывает строку списка заказов. StatusClass содержит
// CSS-классы плашки статуса, SubcategoryURL ссылку на подкатегорию лота.
type ExtractedOrder struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	SubcategoryURL string  `json:"subcategory_url"`
	StatusClass    string  `json:"status_class"`
	Date           *string `json:"date,omitempty"`
	Total          string  `json:"total"`
}

// ExtractedTransaction описывает строку истории баланса. PaymentClass пуст,
// если у транзакции нет иконки способа оплаты.
type ExtractedTransaction struct {
	ID           int64   `json:"id"`
	Description  string  `json:"description"`
	StatusClass  string  `json:"status_class"`
	PaymentClass string  `json:"payment_class,omitempty"`
	Date         *string `json:"date,omitempty"`
	Amount       string  `json:"amount"`
}

// NormalizedPage хранит результат нормализации выгрузки.
type NormalizedPage struct {
	Source   string             `json:"source"`
	Chats    []NormalizedChat   `json:"chats"`
	Amounts  []NormalizedAmount `json:"amounts"`
	Totals   []CurrencyTotal    `json:"totals"`
	Problems []string           `json:"problems,omitempty"`

	Orders       []NormalizedOrder       `json:"orders,omitempty"`
	Transactions []NormalizedTransaction `json:"transactions,omitempty"`
}

// NormalizedChat хранит чат с восстановленными отправителями и датами.
type NormalizedChat struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Messages []ChatMessage `json:"messages"`
	Problems []string      `json:"problems,omitempty"`
}

// NormalizedAmount описывает разобранное денежное поле. Amount равен nil,
// если необязательное поле распознать не удалось.
type NormalizedAmount struct {
	Field    string          `json:"field"`
	Amount   *MonetaryAmount `json:"amount,omitempty"`
	Currency Currency        `json:"currency"`
}

// NormalizedOrder хранит заказ с классифицированными статусом и подкатегорией.
// Date и Total равны nil, если их не удалось распознать.
type NormalizedOrder struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Subcategory SubcategoryType `json:"subcategory"`
	Status      OrderStatus     `json:"status"`
	DateText    *string         `json:"date_text,omitempty"`
	Date        *Instant        `json:"date,omitempty"`
	Total       *MonetaryAmount `json:"total,omitempty"`
}

// NormalizedTransaction хранит транзакцию баланса.
type NormalizedTransaction struct {
	ID            int64             `json:"id"`
	Description   string            `json:"description"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method,omitempty"`
	DateText      *string           `json:"date_text,omitempty"`
	Date          *Instant          `json:"date,omitempty"`
	Amount        *MonetaryAmount   `json:"amount,omitempty"`
}

// CurrencyTotal хранит сумму всех распознанных полей в одной валюте.
type CurrencyTotal struct {
	Symbol string  `json:"currency_symbol"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}
