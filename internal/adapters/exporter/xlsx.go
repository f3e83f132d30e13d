package exporter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

const (
	messagesSheet     = "Сообщения"
	amountsSheet      = "Суммы"
	ordersSheet       = "Заказы"
	transactionsSheet = "Транзакции"
)

// XLSXExporter пишет выгрузку в книгу Excel: сообщения всех чатов на одном
// листе, денежные поля и итоги на другом. Заказы и транзакции получают
// собственные листы, только если они есть в выгрузке.
type XLSXExporter struct {
	w      io.Writer
	logger *slog.Logger
}

// NewXLSXExporter создает новый экземпляр XLSXExporter.
func NewXLSXExporter(w io.Writer, logger *slog.Logger) ports.Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXExporter{w: w, logger: logger}
}

func (e *XLSXExporter) Export(page *domain.NormalizedPage) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Error("failed to close excel file", slog.String("error", err.Error()))
		}
	}()

	if err := f.SetSheetName("Sheet1", messagesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(amountsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeMessages(f, page.Chats); err != nil {
		return err
	}
	if err := writeAmounts(f, page.Amounts, page.Totals); err != nil {
		return err
	}
	if len(page.Orders) > 0 {
		if err := writeOrders(f, page.Orders); err != nil {
			return err
		}
	}
	if len(page.Transactions) > 0 {
		if err := writeTransactions(f, page.Transactions); err != nil {
			return err
		}
	}

	if err := f.Write(e.w); err != nil {
		return fmt.Errorf("failed to write excel: %w", err)
	}
	return nil
}

func writeMessages(f *excelize.File, chats []domain.NormalizedChat) error {
	headers := []any{"Чат", "ID", "Заголовок", "Отправитель", "ID отправителя", "Бейдж", "Категория бейджа", "Отправлено (UTC)", "Текст", "Изображение"}
	if err := f.SetSheetRow(messagesSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	row := 2
	for _, chat := range chats {
		for _, m := range chat.Messages {
			values := []any{
				chat.Name,
				m.ID,
				m.IsHeading,
				deref(m.SenderName),
				deref(m.SenderID),
				"",
				"",
				sentAtCell(m),
				deref(m.Body.Text),
				deref(m.Body.ImageURL),
			}
			if m.Badge != nil {
				values[5] = m.Badge.Text
				values[6] = string(m.Badge.Category)
			}

			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(messagesSheet, cell, &values); err != nil {
				return fmt.Errorf("failed to write message %d: %w", m.ID, err)
			}
			row++
		}
	}
	return nil
}

func writeAmounts(f *excelize.File, amounts []domain.NormalizedAmount, totals []domain.CurrencyTotal) error {
	headers := []any{"Поле", "Сумма", "Символ", "Валюта"}
	if err := f.SetSheetRow(amountsSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	row := 2
	for _, a := range amounts {
		values := []any{a.Field, "", "", currencyCell(a.Currency)}
		if a.Amount != nil {
			values[1] = a.Amount.Magnitude
			values[2] = a.Amount.Symbol
		}
		if err := f.SetSheetRow(amountsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("failed to write amount %q: %w", a.Field, err)
		}
		row++
	}

	row++
	for _, t := range totals {
		values := []any{fmt.Sprintf("Итого (%d)", t.Count), t.Total, t.Symbol}
		if err := f.SetSheetRow(amountsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("failed to write total %q: %w", t.Symbol, err)
		}
		row++
	}
	return nil
}

func writeOrders(f *excelize.File, orders []domain.NormalizedOrder) error {
	headers := []any{"ID", "Описание", "Подкатегория", "Статус", "Дата (UTC)", "Сумма", "Символ"}
	rows := make([][]any, 0, len(orders))
	for _, o := range orders {
		values := []any{o.ID, o.Description, string(o.Subcategory), string(o.Status), recordDateCell(o.Date, o.DateText), "", ""}
		if o.Total != nil {
			values[5] = o.Total.Magnitude
			values[6] = o.Total.Symbol
		}
		rows = append(rows, values)
	}
	return writeSheet(f, ordersSheet, headers, rows)
}

func writeTransactions(f *excelize.File, transactions []domain.NormalizedTransaction) error {
	headers := []any{"ID", "Описание", "Статус", "Способ оплаты", "Дата (UTC)", "Сумма", "Символ"}
	rows := make([][]any, 0, len(transactions))
	for _, tx := range transactions {
		values := []any{tx.ID, tx.Description, string(tx.Status), string(tx.PaymentMethod), recordDateCell(tx.Date, tx.DateText), "", ""}
		if tx.Amount != nil {
			values[5] = tx.Amount.Magnitude
			values[6] = tx.Amount.Symbol
		}
		rows = append(rows, values)
	}
	return writeSheet(f, transactionsSheet, headers, rows)
}

// writeSheet создает лист и записывает заголовок и строки подряд.
func writeSheet(f *excelize.File, sheet string, headers []any, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, values := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

func deref[T any](p *T) any {
	if p == nil {
		return ""
	}
	return *p
}
