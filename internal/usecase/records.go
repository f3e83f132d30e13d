package usecase

import (
	"fmt"

	"go.uber.org/multierr"

	"funpay-normalizer/internal/core/services"
	"funpay-normalizer/internal/domain"
)

// normalizeOrders классифицирует статус и подкатегорию заказов, разбирает их
// даты и суммы. Нераспознанные поля остаются пустыми и попадают в problems.
func (uc *NormalizePageUseCase) normalizeOrders(orders []domain.ExtractedOrder) ([]domain.NormalizedOrder, error) {
	var problems error
	result := make([]domain.NormalizedOrder, 0, len(orders))

	for _, raw := range orders {
		order := domain.NormalizedOrder{
			ID:          raw.ID,
			Description: raw.Description,
			Subcategory: services.ClassifySubcategory(raw.SubcategoryURL),
			Status:      services.ClassifyOrderStatus(raw.StatusClass),
			DateText:    raw.Date,
		}

		date, err := uc.recordDate(raw.Date)
		if err != nil {
			problems = multierr.Append(problems, fmt.Errorf("заказ %s: %w", raw.ID, err))
		}
		order.Date = date

		total, err := uc.optionalMoney.Normalize(raw.Total)
		if err == nil && total == nil {
			err = fmt.Errorf("сумма не распознана: %q", raw.Total)
		}
		if err != nil {
			problems = multierr.Append(problems, fmt.Errorf("заказ %s: %w", raw.ID, err))
		}
		order.Total = total

		result = append(result, order)
	}
	return result, problems
}

// normalizeTransactions делает то же для истории баланса. Способ оплаты
// определяется только при наличии класса иконки.
func (uc *NormalizePageUseCase) normalizeTransactions(transactions []domain.ExtractedTransaction) ([]domain.NormalizedTransaction, error) {
	var problems error
	result := make([]domain.NormalizedTransaction, 0, len(transactions))

	for _, raw := range transactions {
		tx := domain.NormalizedTransaction{
			ID:          raw.ID,
			Description: raw.Description,
			Status:      services.ClassifyTransactionStatus(raw.StatusClass),
			DateText:    raw.Date,
		}
		if raw.PaymentClass != "" {
			tx.PaymentMethod = services.ClassifyPaymentMethod(raw.PaymentClass)
		}

		date, err := uc.recordDate(raw.Date)
		if err != nil {
			problems = multierr.Append(problems, fmt.Errorf("транзакция %d: %w", raw.ID, err))
		}
		tx.Date = date

		amount, err := uc.optionalMoney.Normalize(raw.Amount)
		if err == nil && amount == nil {
			err = fmt.Errorf("сумма не распознана: %q", raw.Amount)
		}
		if err != nil {
			problems = multierr.Append(problems, fmt.Errorf("транзакция %d: %w", raw.ID, err))
		}
		tx.Amount = amount

		result = append(result, tx)
	}
	return result, problems
}

func (uc *NormalizePageUseCase) recordDate(text *string) (*domain.Instant, error) {
	if text == nil {
		return nil, nil
	}
	at, err := uc.dates.Normalize(*text)
	if err != nil {
		return nil, err
	}
	return &at, nil
}
