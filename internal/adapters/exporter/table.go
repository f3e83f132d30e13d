package exporter

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// textTable печатает моноширинную таблицу с переносом длинных ячеек по словам.
type textTable struct {
	headers []string
	widths  []int
	rows    [][]string
}

func newTextTable(headers []string, widths []int) *textTable {
	return &textTable{headers: headers, widths: widths}
}

func (t *textTable) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *textTable) writeTo(w io.Writer) error {
	var sb strings.Builder

	t.writeLine(&sb, t.headers)
	sb.WriteString("|")
	for _, width := range t.widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("|")
	}
	sb.WriteString("\n")

	for _, row := range t.rows {
		wrapped := make([][]string, len(t.widths))
		height := 1
		for i, width := range t.widths {
			cell := ""
			if i < len(row) {
				cell = strings.ReplaceAll(strings.ToValidUTF8(row[i], ""), "\n", " ")
			}
			wrapped[i] = wrapString(cell, width)
			height = max(height, len(wrapped[i]))
		}

		for line := 0; line < height; line++ {
			parts := make([]string, len(t.widths))
			for i := range t.widths {
				if line < len(wrapped[i]) {
					parts[i] = wrapped[i][line]
				}
			}
			t.writeLine(&sb, parts)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *textTable) writeLine(sb *strings.Builder, cells []string) {
	for i, width := range t.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString("| ")
		sb.WriteString(cell)
		sb.WriteString(padding(cell, width))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
}

// padding возвращает пробелы, дополняющие s до ширины колонки.
func padding(s string, colWidth int) string {
	if n := colWidth - runewidth.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n)
	}
	return ""
}

// wrapString разбивает строку на строки не шире width, стараясь переносить
// по пробелам. Слово длиннее width разрывается посередине.
func wrapString(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)

		if wordWidth > width {
			if current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
			lines = append(lines, breakWord(word, width)...)
			continue
		}

		lineWidth := runewidth.StringWidth(current.String())
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

func breakWord(word string, width int) []string {
	var parts []string
	runes := []rune(word)
	for len(runes) > 0 {
		i, w := 0, 0
		for i < len(runes) {
			rw := runewidth.RuneWidth(runes[i])
			if w+rw > width && i > 0 {
				break
			}
			w += rw
			i++
		}
		parts = append(parts, string(runes[:i]))
		runes = runes[i:]
	}
	return parts
}
