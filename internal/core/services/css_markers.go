package services

import (
	"strings"

	"funpay-normalizer/internal/domain"
)

// marker связывает подстроку CSS-класса (или URL) со значением перечисления.
type marker[T any] struct {
	substring string
	value     T
}

// firstContaining возвращает значение первого маркера, содержащегося в s.
// Порядок таблицы задает приоритет при нескольких совпадениях.
func firstContaining[T any](s string, table []marker[T], fallback T) T {
	for _, m := range table {
		if strings.Contains(s, m.substring) {
			return m.value
		}
	}
	return fallback
}

var orderStatusMarkers = []marker[domain.OrderStatus]{
	{"text-primary", domain.OrderStatusPaid},
	{"text-success", domain.OrderStatusCompleted},
	{"text-warning", domain.OrderStatusRefunded},
}

// ClassifyOrderStatus определяет статус заказа по строке CSS-классов.
func ClassifyOrderStatus(cssClass string) domain.OrderStatus {
	return firstContaining(cssClass, orderStatusMarkers, domain.OrderStatusUnknown)
}

var transactionStatusMarkers = []marker[domain.TransactionStatus]{
	{"transaction-status-waiting", domain.TransactionPending},
	{"transaction-status-complete", domain.TransactionCompleted},
	{"transaction-status-cancel", domain.TransactionCancelled},
}

// ClassifyTransactionStatus определяет статус транзакции по классам строки истории.
func ClassifyTransactionStatus(cssClass string) domain.TransactionStatus {
	return firstContaining(cssClass, transactionStatusMarkers, domain.TransactionUnknown)
}

var subcategoryMarkers = []marker[domain.SubcategoryType]{
	{"lots", domain.SubcategoryCommon},
	{"chips", domain.SubcategoryCurrency},
}

// ClassifySubcategory определяет тип подкатегории по ее URL.
func ClassifySubcategory(url string) domain.SubcategoryType {
	return firstContaining(url, subcategoryMarkers, domain.SubcategoryUnknown)
}

// paymentMethodClasses сопоставляет CSS-классы иконок со способами оплаты.
// Номера классов являются префиксами друг друга (payment-method-1 и
// payment-method-10), поэтому сравнение идет по целому классу, а не по подстроке.
var paymentMethodClasses = map[string]domain.PaymentMethod{
	"payment-method-1":            domain.PaymentQIWI,
	"payment-method-qiwi":         domain.PaymentQIWI,
	"payment-method-2":            domain.PaymentYandex,
	"payment-method-yandex":       domain.PaymentYandex,
	"payment-method-fps":          domain.PaymentYandex,
	"payment-method-21":           domain.PaymentFPS,
	"payment-method-3":            domain.PaymentWebMoneyWME,
	"payment-method-wme":          domain.PaymentWebMoneyWME,
	"payment-method-4":            domain.PaymentWebMoneyWMP,
	"payment-method-wmp":          domain.PaymentWebMoneyWMP,
	"payment-method-5":            domain.PaymentWebMoneyWMR,
	"payment-method-wmr":          domain.PaymentWebMoneyWMR,
	"payment-method-6":            domain.PaymentWebMoneyWMZ,
	"payment-method-wmz":          domain.PaymentWebMoneyWMZ,
	"payment-method-10":           domain.PaymentWebMoneyOther,
	"payment-method-7":            domain.PaymentCardRUB,
	"payment-method-card_rub":     domain.PaymentCardRUB,
	"payment-method-card_usd":     domain.PaymentCardUSD,
	"payment-method-card_eur":     domain.PaymentCardEUR,
	"payment-method-card_uah":     domain.PaymentCardUAH,
	"payment-method-11":           domain.PaymentCardOther,
	"payment-method-15":           domain.PaymentCardOther,
	"payment-method-16":           domain.PaymentCardOther,
	"payment-method-25":           domain.PaymentCardOther,
	"payment-method-26":           domain.PaymentCardOther,
	"payment-method-27":           domain.PaymentCardOther,
	"payment-method-32":           domain.PaymentCardOther,
	"payment-method-33":           domain.PaymentCardOther,
	"payment-method-34":           domain.PaymentCardOther,
	"payment-method-35":           domain.PaymentCardOther,
	"payment-method-37":           domain.PaymentCardOther,
	"payment-method-38":           domain.PaymentCardOther,
	"payment-method-39":           domain.PaymentCardOther,
	"payment-method-40":           domain.PaymentCardOther,
	"payment-method-8":            domain.PaymentMobile,
	"payment-method-9":            domain.PaymentApple,
	"payment-method-19":           domain.PaymentApple,
	"payment-method-20":           domain.PaymentApple,
	"payment-method-12":           domain.PaymentMastercard,
	"payment-method-22":           domain.PaymentMastercard,
	"payment-method-23":           domain.PaymentMastercard,
	"payment-method-13":           domain.PaymentVisa,
	"payment-method-28":           domain.PaymentVisa,
	"payment-method-29":           domain.PaymentVisa,
	"payment-method-14":           domain.PaymentGoogle,
	"payment-method-17":           domain.PaymentGoogle,
	"payment-method-18":           domain.PaymentGoogle,
	"payment-method-24":           domain.PaymentFunPayBalance,
	"payment-method-30":           domain.PaymentLitecoin,
	"payment-method-31":           domain.PaymentBinance,
	"payment-method-binance_usdt": domain.PaymentBinanceUSDT,
	"payment-method-binance_usdc": domain.PaymentBinanceUSDC,
	"payment-method-36":           domain.PaymentPayPal,
	"payment-method-paypal":       domain.PaymentPayPal,
	"payment-method-usdt_trc":     domain.PaymentUSDTTRC,
}

// ClassifyPaymentMethod определяет способ оплаты по строке CSS-классов иконки.
// Побеждает первый по порядку класс, известный таблице.
func ClassifyPaymentMethod(cssClass string) domain.PaymentMethod {
	for _, class := range strings.Fields(cssClass) {
		if method, ok := paymentMethodClasses[class]; ok {
			return method
		}
	}
	return domain.PaymentMethodUnknown
}
