package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alignment - выравнивание колонки
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// TableColumn описывает колонку таблицы
type TableColumn struct {
	Header string
	Width  int // минимальная ширина
	Align  Alignment
}

// Table - текстовая таблица со стилями lipgloss
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable создаёт таблицу с заданными колонками
func NewTable(columns ...TableColumn) *Table {
	return &Table{Columns: columns}
}

// AddRow добавляет строку. Недостающие ячейки пустые, лишние отбрасываются.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render отрисовывает таблицу в строку
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Header))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(singleLine(cell)))
			}
		}
	}

	var b strings.Builder

	parts := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		parts[i] = pad(col.Header, widths[i], AlignLeft)
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(parts, "  ")))
	b.WriteString("\n")

	for i := range t.Columns {
		parts[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(StyleTableBorder.Render(strings.Join(parts, "  ")))
	b.WriteString("\n")

	for idx, row := range t.Rows {
		for i, col := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = singleLine(row[i])
			}
			parts[i] = pad(cell, widths[i], col.Align)
		}

		style := StyleTableRow
		if idx%2 == 1 {
			style = StyleTableRowAlt
		}
		b.WriteString(style.Render(strings.Join(parts, "  ")))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderList отрисовывает маркированный список
func RenderList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(StyleInfo.Render("  • "))
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func pad(s string, width int, align Alignment) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}
