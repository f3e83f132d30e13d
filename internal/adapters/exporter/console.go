package exporter

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"funpay-normalizer/internal/domain"
	"funpay-normalizer/internal/ports"
)

// ColumnWidths задает ширину колонок таблицы сообщений в консольном выводе.
// Нулевая ширина отключает перенос в колонке.
type ColumnWidths struct {
	Sender int
	Badge  int
	SentAt int
	Text   int
}

// ConsoleExporter реализует интерфейс Exporter для вывода данных в консоль.
type ConsoleExporter struct {
	w      io.Writer
	widths ColumnWidths
}

// NewConsoleExporter создает новый экземпляр ConsoleExporter.
func NewConsoleExporter(w io.Writer, widths ColumnWidths) ports.Exporter {
	return &ConsoleExporter{w: w, widths: widths}
}

// Export печатает чаты, денежные поля и итоги по валютам.
func (e *ConsoleExporter) Export(page *domain.NormalizedPage) error {
	if _, err := fmt.Fprintf(e.w, "--- %s ---\n", page.Source); err != nil {
		return err
	}

	if len(page.Chats) == 0 {
		fmt.Fprintln(e.w, "No chats found.")
	}
	for _, chat := range page.Chats {
		fmt.Fprintf(e.w, "\nChat %d: %s (%s messages)\n", chat.ID, chat.Name, humanize.Comma(int64(len(chat.Messages))))

		table := newTextTable(
			[]string{"ID", "Sender", "Badge", "Sent at", "Message"},
			[]int{idWidth(chat.Messages), e.widths.Sender, e.widths.Badge, e.widths.SentAt, e.widths.Text},
		)
		for _, m := range chat.Messages {
			table.addRow(fmt.Sprint(m.ID), senderCell(m), badgeCell(m), sentAtCell(m), bodyCell(m))
		}
		if err := table.writeTo(e.w); err != nil {
			return err
		}
		for _, p := range chat.Problems {
			fmt.Fprintf(e.w, "  ! %s\n", p)
		}
	}

	if len(page.Amounts) > 0 {
		fmt.Fprintln(e.w, "\nAmounts")
		table := newTextTable([]string{"Field", "Amount", "Currency"}, []int{e.widths.Sender, e.widths.Badge, 8})
		for _, a := range page.Amounts {
			table.addRow(a.Field, amountCell(a), currencyCell(a.Currency))
		}
		if err := table.writeTo(e.w); err != nil {
			return err
		}
	}

	if len(page.Orders) > 0 {
		fmt.Fprintln(e.w, "\nOrders")
		table := newTextTable(
			[]string{"ID", "Status", "Subcategory", "Date", "Total", "Description"},
			[]int{10, 10, 11, e.widths.SentAt, e.widths.Badge, e.widths.Text},
		)
		for _, o := range page.Orders {
			table.addRow(o.ID, string(o.Status), string(o.Subcategory), recordDateCell(o.Date, o.DateText), moneyCell(o.Total), o.Description)
		}
		if err := table.writeTo(e.w); err != nil {
			return err
		}
	}

	if len(page.Transactions) > 0 {
		fmt.Fprintln(e.w, "\nTransactions")
		table := newTextTable(
			[]string{"ID", "Status", "Method", "Date", "Amount", "Description"},
			[]int{10, 10, 14, e.widths.SentAt, e.widths.Badge, e.widths.Text},
		)
		for _, tx := range page.Transactions {
			table.addRow(fmt.Sprint(tx.ID), string(tx.Status), string(tx.PaymentMethod), recordDateCell(tx.Date, tx.DateText), moneyCell(tx.Amount), tx.Description)
		}
		if err := table.writeTo(e.w); err != nil {
			return err
		}
	}

	for _, t := range page.Totals {
		fmt.Fprintf(e.w, "Total %s: %s (%d fields)\n", t.Symbol, humanize.FormatFloat(moneyFormat, t.Total), t.Count)
	}
	for _, p := range page.Problems {
		fmt.Fprintf(e.w, "! %s\n", p)
	}
	return nil
}

func idWidth(messages []domain.ChatMessage) int {
	width := len("ID")
	for _, m := range messages {
		width = max(width, len(fmt.Sprint(m.ID)))
	}
	return width
}
