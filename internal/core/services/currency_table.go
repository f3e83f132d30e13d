package services

import "funpay-normalizer/internal/domain"

var currencySymbols = []struct {
	symbol   string
	currency domain.Currency
}{
	{"₽", domain.CurrencyRUB},
	{"$", domain.CurrencyUSD},
	{"€", domain.CurrencyEUR},
}

// CurrencyBySymbol возвращает валюту по ее символу или CurrencyUnknown.
func CurrencyBySymbol(symbol string) domain.Currency {
	for _, c := range currencySymbols {
		if c.symbol == symbol {
			return c.currency
		}
	}
	return domain.CurrencyUnknown
}

// SymbolOf возвращает символ валюты; для CurrencyUnknown пустую строку.
func SymbolOf(currency domain.Currency) string {
	for _, c := range currencySymbols {
		if c.currency == currency {
			return c.symbol
		}
	}
	return ""
}
