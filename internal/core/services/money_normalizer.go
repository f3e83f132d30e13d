package services

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

// unicodeMinus это MINUS SIGN (U+2212), которым сайт помечает списания.
const unicodeMinus = '−'

// moneyPattern: знак, число и ровно один символ валюты в конце.
// Цифра в роли символа не допускается: иначе "100" читалось бы как 10 с символом "0".
var moneyPattern = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)(\D)$`)

// MoneyPolicy определяет реакцию на нераспознанный текст суммы.
type MoneyPolicy int

const (
	// MoneyPolicyStrict возвращает UnrecognizedMoneyFormatError.
	MoneyPolicyStrict MoneyPolicy = iota
	// MoneyPolicyOptional возвращает nil без ошибки.
	MoneyPolicyOptional
)

func (p MoneyPolicy) String() string {
	switch p {
	case MoneyPolicyStrict:
		return "strict"
	case MoneyPolicyOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// matchMoney выполняет разбор и сообщает, подошла ли грамматика.
func matchMoney(text string) (domain.MonetaryAmount, bool) {
	compact := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == unicodeMinus:
			return '-'
		default:
			return r
		}
	}, text)

	m := moneyPattern.FindStringSubmatch(compact)
	if m == nil {
		return domain.MonetaryAmount{}, false
	}

	value, err := decimal.NewFromString(m[2])
	if err != nil {
		return domain.MonetaryAmount{}, false
	}
	if m[1] == "-" {
		value = value.Neg()
	}
	return domain.NewMonetaryAmount(value, m[3]), true
}

// ParseMoney разбирает сумму и возвращает ошибку, если текст не распознан.
// Используется там, где поле на странице есть всегда и его отсутствие означает ошибку разметки.
func ParseMoney(text string) (domain.MonetaryAmount, error) {
	amount, ok := matchMoney(text)
	if !ok {
		return domain.MonetaryAmount{}, &UnrecognizedMoneyFormatError{Text: text}
	}
	return amount, nil
}

// ParseMoneyOptional разбирает сумму и возвращает nil, если текст не распознан.
// Используется для полей, которые страница иногда не показывает.
func ParseMoneyOptional(text string) *domain.MonetaryAmount {
	amount, ok := matchMoney(text)
	if !ok {
		return nil
	}
	return &amount
}

// MoneyNormalizerImpl реализует интерфейс MoneyNormalizer с выбранной политикой.
type MoneyNormalizerImpl struct {
	policy MoneyPolicy
}

// NewMoneyNormalizer создает нормализатор сумм с политикой policy.
func NewMoneyNormalizer(policy MoneyPolicy) ports.MoneyNormalizer {
	return &MoneyNormalizerImpl{policy: policy}
}

// Normalize разбирает text согласно политике нормализатора.
func (n *MoneyNormalizerImpl) Normalize(text string) (*domain.MonetaryAmount, error) {
	if n.policy == MoneyPolicyOptional {
		return ParseMoneyOptional(text), nil
	}
	amount, err := ParseMoney(text)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}
