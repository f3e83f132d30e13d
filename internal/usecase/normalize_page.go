package usecase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"funpay-normalizer/internal/cache"
	"funpay-normalizer/internal/clock"
	"funpay-normalizer/internal/core/services"
	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

// NormalizePageUseCase превращает выгрузку экстрактора в нормализованный документ:
// разбирает даты и суммы, классифицирует бейджи и восстанавливает отправителей.
type NormalizePageUseCase struct {
	parser        ports.Parser
	dates         ports.DateNormalizer
	badges        ports.BadgeClassifier
	resolver      ports.SenderResolver
	strictMoney   ports.MoneyNormalizer
	optionalMoney ports.MoneyNormalizer
	workers       int
	logger        *slog.Logger

	cache *cache.PageCache
	clock clock.Clock
}

// Option настраивает NormalizePageUseCase.
type Option func(*NormalizePageUseCase)

// WithCache включает кэш нормализованных выгрузок. c должен быть теми же
// часами, что переданы нормализатору дат.
func WithCache(pc *cache.PageCache, c clock.Clock) Option {
	return func(uc *NormalizePageUseCase) {
		uc.cache = pc
		uc.clock = c
	}
}

// NewNormalizePageUseCase создает новый экземпляр NormalizePageUseCase.
// workers ограничивает число чатов, обрабатываемых одновременно.
func NewNormalizePageUseCase(
	parser ports.Parser,
	dates ports.DateNormalizer,
	badges ports.BadgeClassifier,
	resolver ports.SenderResolver,
	workers int,
	logger *slog.Logger,
	opts ...Option,
) *NormalizePageUseCase {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	uc := &NormalizePageUseCase{
		parser:        parser,
		dates:         dates,
		badges:        badges,
		resolver:      resolver,
		strictMoney:   services.NewMoneyNormalizer(services.MoneyPolicyStrict),
		optionalMoney: services.NewMoneyNormalizer(services.MoneyPolicyOptional),
		workers:       workers,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.cache != nil && uc.clock == nil {
		uc.clock = clock.NewSystemClock()
	}
	return uc
}

// Run загружает, разбирает и нормализует каждый источник по очереди.
// Выгрузка без собственного source получает имя источника.
func (uc *NormalizePageUseCase) Run(ctx context.Context, sources []ports.DataSource) ([]*domain.NormalizedPage, error) {
	pages := make([]*domain.NormalizedPage, 0, len(sources))
	for _, src := range sources {
		uc.logger.Info("Обработка источника", "source", src.Name())

		data, err := src.Fetch()
		if err != nil {
			return nil, fmt.Errorf("не удалось загрузить данные из %s: %w", src.Name(), err)
		}

		page, err := uc.normalizeData(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("не удалось обработать %s: %w", src.Name(), err)
		}

		named := *page
		if named.Source == "" {
			named.Source = src.Name()
		}
		pages = append(pages, &named)
	}
	return pages, nil
}

func (uc *NormalizePageUseCase) normalizeData(ctx context.Context, data []byte) (*domain.NormalizedPage, error) {
	var key string
	if uc.cache != nil {
		key = cache.Key(data, uc.clock.Now())
		if page, ok := uc.cache.Get(key); ok {
			uc.logger.Debug("Выгрузка взята из кэша", "key", key)
			return page, nil
		}
	}

	extracted, err := uc.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать данные: %w", err)
	}

	page, err := uc.Normalize(ctx, extracted)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if removed := uc.cache.CleanupExpired(); removed > 0 {
			uc.logger.Debug("Просроченные выгрузки удалены из кэша", "removed", removed)
		}
		uc.cache.Put(key, page)
	}
	return page, nil
}

// Normalize нормализует одну выгрузку. Ошибка возвращается только для
// обязательных сумм, которые не удалось распознать, и при отмене контекста.
// Нераспознанные даты и необязательные суммы, включая суммы заказов
// и транзакций, попадают в Problems.
func (uc *NormalizePageUseCase) Normalize(ctx context.Context, page *domain.ExtractedPage) (*domain.NormalizedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	chats := make([]domain.NormalizedChat, len(page.Chats))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	for i, chat := range page.Chats {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chats[i] = uc.normalizeChat(chat)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	amounts, problems, err := uc.normalizeAmounts(page.Amounts)
	if err != nil {
		return nil, err
	}
	orders, orderProblems := uc.normalizeOrders(page.Orders)
	transactions, txProblems := uc.normalizeTransactions(page.Transactions)
	problems = append(problems, errorStrings(multierr.Combine(orderProblems, txProblems))...)

	result := &domain.NormalizedPage{
		Source:       page.Source,
		Chats:        chats,
		Amounts:      amounts,
		Totals:       sumByCurrency(amounts),
		Problems:     problems,
		Orders:       orders,
		Transactions: transactions,
	}
	uc.logger.Info("Выгрузка нормализована",
		"source", result.Source,
		"chats", len(result.Chats),
		"amounts", len(result.Amounts),
		"orders", len(result.Orders),
		"transactions", len(result.Transactions),
		"problems", len(result.Problems),
	)
	return result, nil
}

// normalizeChat собирает сообщения чата, разбирает их даты и восстанавливает
// отправителей. Ошибка в одном поле не мешает разбору остальных.
func (uc *NormalizePageUseCase) normalizeChat(chat domain.ExtractedChat) domain.NormalizedChat {
	var problems error
	messages := make([]domain.ChatMessage, 0, len(chat.Messages))

	for _, raw := range chat.Messages {
		msg := domain.ChatMessage{
			ID:         raw.ID,
			IsHeading:  raw.IsHeading,
			SenderID:   raw.SenderID,
			SenderName: raw.SenderName,
			SentAtText: raw.SentAt,
			Body:       domain.MessageBody{Text: raw.Text, ImageURL: raw.ImageURL},
		}

		if err := msg.Body.Validate(); err != nil {
			problems = multierr.Append(problems, fmt.Errorf("сообщение %d: %w", raw.ID, err))
		}

		if raw.Badge != nil {
			badge := *raw.Badge
			if badge.CSSClass != "" || badge.Category == "" {
				badge.Category = uc.badges.Classify(badge.CSSClass)
			}
			msg.Badge = &badge
		}

		if raw.SentAt != nil {
			at, err := uc.dates.Normalize(*raw.SentAt)
			if err != nil {
				problems = multierr.Append(problems, fmt.Errorf("сообщение %d: %w", raw.ID, err))
			} else {
				msg.SentAt = &at
			}
		}

		messages = append(messages, msg)
	}

	slices.SortStableFunc(messages, func(a, b domain.ChatMessage) int {
		return cmp.Compare(a.ID, b.ID)
	})
	if len(messages) > 0 && !messages[0].IsHeading {
		uc.logger.Warn("Чат начинается не с заголовочного сообщения", "chat_id", chat.ID, "message_id", messages[0].ID)
	}
	uc.resolver.Resolve(messages)

	for _, err := range multierr.Errors(problems) {
		uc.logger.Debug("Поле сообщения не распознано", "chat_id", chat.ID, "error", err)
	}

	return domain.NormalizedChat{
		ID:       chat.ID,
		Name:     chat.Name,
		Messages: messages,
		Problems: errorStrings(problems),
	}
}

// normalizeAmounts разбирает денежные поля: обязательные строго, остальные мягко.
func (uc *NormalizePageUseCase) normalizeAmounts(fields []domain.ExtractedAmount) ([]domain.NormalizedAmount, []string, error) {
	var problems error
	result := make([]domain.NormalizedAmount, 0, len(fields))

	for _, field := range fields {
		normalizer := uc.optionalMoney
		if field.Required {
			normalizer = uc.strictMoney
		}

		amount, err := normalizer.Normalize(field.Text)
		if err != nil {
			return nil, nil, fmt.Errorf("обязательное поле %q: %w", field.Field, err)
		}

		normalized := domain.NormalizedAmount{Field: field.Field, Currency: domain.CurrencyUnknown}
		if amount == nil {
			problems = multierr.Append(problems, fmt.Errorf("поле %q: сумма не распознана: %q", field.Field, field.Text))
		} else {
			normalized.Amount = amount
			normalized.Currency = services.CurrencyBySymbol(amount.Symbol)
		}
		result = append(result, normalized)
	}
	return result, errorStrings(problems), nil
}

// sumByCurrency складывает распознанные суммы по символу валюты
// в порядке первого появления символа.
func sumByCurrency(amounts []domain.NormalizedAmount) []domain.CurrencyTotal {
	var order []string
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, a := range amounts {
		if a.Amount == nil {
			continue
		}
		symbol := a.Amount.Symbol
		if _, seen := sums[symbol]; !seen {
			order = append(order, symbol)
		}
		sums[symbol] = sums[symbol].Add(a.Amount.Decimal())
		counts[symbol]++
	}

	totals := make([]domain.CurrencyTotal, 0, len(order))
	for _, symbol := range order {
		totals = append(totals, domain.CurrencyTotal{
			Symbol: symbol,
			Total:  sums[symbol].InexactFloat64(),
			Count:  counts[symbol],
		})
	}
	return totals
}

func errorStrings(err error) []string {
	errs := multierr.Errors(err)
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
