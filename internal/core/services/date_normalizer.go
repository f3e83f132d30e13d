package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"funpay-normalizer/internal/clock"
	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

// monthNames содержит родительный падеж названий месяцев на русском, английском и украинском.
var monthNames = map[string]time.Month{
	"января": time.January, "февраля": time.February, "марта": time.March,
	"апреля": time.April, "мая": time.May, "июня": time.June,
	"июля": time.July, "августа": time.August, "сентября": time.September,
	"октября": time.October, "ноября": time.November, "декабря": time.December,

	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,

	"січня": time.January, "лютого": time.February, "березня": time.March,
	"квітня": time.April, "травня": time.May, "червня": time.June,
	"липня": time.July, "серпня": time.August, "вересня": time.September,
	"жовтня": time.October, "листопада": time.November, "грудня": time.December,
}

// relativeDays задает, сколько дней отнять от текущей даты для слов «сегодня» и «вчера».
var relativeDays = map[string]int{
	"сегодня":   0,
	"today":     0,
	"сьогодні":  0,
	"вчера":     1,
	"yesterday": 1,
	"вчора":     1,
	"учора":     1,
}

// dateGrammar описывает одно текстовое представление даты.
// build возвращает false, если совпадение найдено, но значения не образуют дату.
type dateGrammar struct {
	name    string
	pattern *regexp.Regexp
	build   func(m []string, now time.Time) (time.Time, bool)
}

// dateGrammars перебираются строго по порядку: более узкие шаблоны раньше.
var dateGrammars = []dateGrammar{
	{
		name:    "time",
		pattern: regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})$`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			return makeDate(now.Year(), int(now.Month()), now.Day(), num(m[1]), num(m[2]), num(m[3]))
		},
	},
	{
		name:    "short_date",
		pattern: regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{2})$`),
		build: func(m []string, _ time.Time) (time.Time, bool) {
			return makeDate(2000+num(m[3]), num(m[2]), num(m[1]), 0, 0, 0)
		},
	},
	{
		name:    "relative_day",
		pattern: regexp.MustCompile(`^(\p{L}+),? (\d{1,2}):(\d{1,2})$`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			offset, ok := relativeDays[m[1]]
			if !ok {
				return time.Time{}, false
			}
			day := now.AddDate(0, 0, -offset)
			return makeDate(day.Year(), int(day.Month()), day.Day(), num(m[2]), num(m[3]), 0)
		},
	},
	{
		name:    "day_month",
		pattern: regexp.MustCompile(`^(\d{1,2}) (\p{L}+),? (\d{1,2}):(\d{1,2})$`),
		build: func(m []string, now time.Time) (time.Time, bool) {
			month, ok := monthNames[m[2]]
			if !ok {
				return time.Time{}, false
			}
			// Год всегда берется из now, даже если дата оказывается в будущем.
			return makeDate(now.Year(), int(month), num(m[1]), num(m[3]), num(m[4]), 0)
		},
	},
	{
		name:    "day_month_year",
		pattern: regexp.MustCompile(`^(\d{1,2}) (\p{L}+) (\d{4}),? (\d{1,2}):(\d{1,2})$`),
		build: func(m []string, _ time.Time) (time.Time, bool) {
			month, ok := monthNames[m[2]]
			if !ok {
				return time.Time{}, false
			}
			return makeDate(num(m[3]), int(month), num(m[1]), num(m[4]), num(m[5]), 0)
		},
	},
	{
		name:    "dotted_datetime",
		pattern: regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{2}) (\d{1,2}):(\d{1,2})$`),
		build: func(m []string, _ time.Time) (time.Time, bool) {
			return makeDate(2000+num(m[3]), num(m[2]), num(m[1]), num(m[4]), num(m[5]), 0)
		},
	},
	{
		name:    "slashed_datetime",
		pattern: regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}) (\d{1,2}):(\d{1,2}):(\d{1,2})$`),
		build: func(m []string, _ time.Time) (time.Time, bool) {
			return makeDate(2000+num(m[3]), num(m[2]), num(m[1]), num(m[4]), num(m[5]), num(m[6]))
		},
	},
}

// ParseDate преобразует текст даты с сайта в абсолютный момент.
// Относительные и неполные форматы разрешаются относительно now,
// который предварительно приводится к UTC и обрезается до минуты.
func ParseDate(text string, now time.Time) (domain.Instant, error) {
	normalized := foldDateText(text)
	ref := now.UTC().Truncate(time.Minute)

	for _, g := range dateGrammars {
		m := g.pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		if t, ok := g.build(m, ref); ok {
			return domain.InstantOf(t), nil
		}
	}
	return 0, &UnrecognizedDateFormatError{Text: text}
}

// foldDateText приводит текст к NFC, нижнему регистру и схлопывает пробелы.
func foldDateText(text string) string {
	folded := cases.Lower(language.Und).String(norm.NFC.String(text))
	return strings.Join(strings.Fields(folded), " ")
}

// makeDate собирает момент в UTC и отбрасывает значения, которые
// time.Date молча перенес бы на соседний день или месяц.
func makeDate(year, month, day, hour, minute, second int) (time.Time, bool) {
	if month < 1 || month > 12 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func num(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// DateNormalizerImpl реализует интерфейс DateNormalizer поверх ParseDate.
type DateNormalizerImpl struct {
	clock clock.Clock
}

// NewDateNormalizer создает нормализатор, берущий текущее время из c.
func NewDateNormalizer(c clock.Clock) ports.DateNormalizer {
	return &DateNormalizerImpl{clock: c}
}

// Normalize разбирает text относительно текущего момента часов.
func (n *DateNormalizerImpl) Normalize(text string) (domain.Instant, error) {
	return ParseDate(text, n.clock.Now())
}
