package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funpay-normalizer/internal/domain"
)

func TestParseMoneySignConventions(t *testing.T) {
	magnitudes := []string{"0", "7", "12.5", "99.999", "1234567.01"}
	symbols := []string{"₽", "$", "€"}

	for _, m := range magnitudes {
		for _, c := range symbols {
			cases := []struct {
				input    string
				negative bool
			}{
				{fmt.Sprintf("%s %s", m, c), false},
				{fmt.Sprintf("+%s %s", m, c), false},
				{fmt.Sprintf("-%s %s", m, c), true},
				{fmt.Sprintf("−%s %s", m, c), true},
			}
			for _, tc := range cases {
				t.Run(tc.input, func(t *testing.T) {
					got, err := ParseMoney(tc.input)
					require.NoError(t, err)

					want, _ := ParseMoney(m + c)
					if tc.negative {
						assert.Equal(t, -want.Magnitude, got.Magnitude)
						assert.True(t, got.Decimal().Equal(want.Decimal().Neg()))
					} else {
						assert.Equal(t, want.Magnitude, got.Magnitude)
					}
					assert.Equal(t, c, got.Symbol)
				})
			}
		}
	}
}

func TestParseMoneyValues(t *testing.T) {
	testCases := []struct {
		input     string
		magnitude float64
		symbol    string
		currency  domain.Currency
	}{
		{"12.5 ₽", 12.5, "₽", domain.CurrencyRUB},
		{"−150 ₽", -150, "₽", domain.CurrencyRUB},
		{"+0.99 $", 0.99, "$", domain.CurrencyUSD},
		{"-3.10 €", -3.1, "€", domain.CurrencyEUR},
		{"100₽", 100, "₽", domain.CurrencyRUB},
		{"42 ¥", 42, "¥", domain.CurrencyUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMoney(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.magnitude, got.Magnitude)
			assert.Equal(t, tc.symbol, got.Symbol)
			assert.Equal(t, tc.currency, CurrencyBySymbol(got.Symbol))
		})
	}
}

func TestParseMoneyIgnoresWhitespace(t *testing.T) {
	want, err := ParseMoney("-12.5₽")
	require.NoError(t, err)

	inputs := []string{
		"-12.5 ₽",
		"                  -12.5                          ₽",
		"- 12.5 ₽",
		"− 12.5 ₽",
		"\t-12.5\n₽ ",
		"-  12.5　₽",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ParseMoney(input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got))
			assert.Equal(t, want.Magnitude, got.Magnitude)
		})
	}
}

func TestParseMoneyRejects(t *testing.T) {
	inputs := []string{
		"",
		"₽",
		"12.5",
		"100",
		"abc ₽",
		"12.5 руб",
		"12,5 ₽",
		"--12 ₽",
		"+-12 ₽",
		"12. ₽",
		".5 ₽",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMoney(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnrecognizedMoneyFormat))

			var moneyErr *UnrecognizedMoneyFormatError
			require.True(t, errors.As(err, &moneyErr))
			assert.Equal(t, input, moneyErr.Text)

			assert.Nil(t, ParseMoneyOptional(input))
		})
	}
}

func TestParseMoneyOptional(t *testing.T) {
	got := ParseMoneyOptional("−1 234.56 €")
	require.NotNil(t, got)
	assert.Equal(t, -1234.56, got.Magnitude)
	assert.Equal(t, "€", got.Symbol)

	assert.Nil(t, ParseMoneyOptional("нет данных"))
}

func TestMoneyNormalizerPolicies(t *testing.T) {
	t.Run("strict возвращает ошибку", func(t *testing.T) {
		n := NewMoneyNormalizer(MoneyPolicyStrict)
		got, err := n.Normalize("нет данных")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrUnrecognizedMoneyFormat)
	})

	t.Run("optional возвращает nil без ошибки", func(t *testing.T) {
		n := NewMoneyNormalizer(MoneyPolicyOptional)
		got, err := n.Normalize("нет данных")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("обе политики одинаково разбирают корректный текст", func(t *testing.T) {
		for _, policy := range []MoneyPolicy{MoneyPolicyStrict, MoneyPolicyOptional} {
			got, err := NewMoneyNormalizer(policy).Normalize("+15.75 $")
			require.NoError(t, err, policy.String())
			require.NotNil(t, got)
			assert.Equal(t, 15.75, got.Magnitude)
			assert.Equal(t, "$", got.Symbol)
		}
	})

	t.Run("имена политик", func(t *testing.T) {
		assert.Equal(t, "strict", MoneyPolicyStrict.String())
		assert.Equal(t, "optional", MoneyPolicyOptional.String())
		assert.Equal(t, "unknown", MoneyPolicy(42).String())
	})
}

func TestCurrencyTable(t *testing.T) {
	assert.Equal(t, domain.CurrencyRUB, CurrencyBySymbol("₽"))
	assert.Equal(t, domain.CurrencyUSD, CurrencyBySymbol("$"))
	assert.Equal(t, domain.CurrencyEUR, CurrencyBySymbol("€"))
	assert.Equal(t, domain.CurrencyUnknown, CurrencyBySymbol("Amongus"))
	assert.Equal(t, domain.CurrencyUnknown, CurrencyBySymbol(""))

	for _, c := range []domain.Currency{domain.CurrencyRUB, domain.CurrencyUSD, domain.CurrencyEUR} {
		assert.Equal(t, c, CurrencyBySymbol(SymbolOf(c)))
	}
	assert.Equal(t, "", SymbolOf(domain.CurrencyUnknown))
}
