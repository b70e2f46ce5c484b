package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func renderPlain(t *Table) []string {
	out := ansi.Strip(t.Render())
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestTableRender_AlignsColumns(t *testing.T) {
	table := NewTable(
		TableColumn{Header: "ID", Align: AlignRight},
		TableColumn{Header: "Name"},
		TableColumn{Header: "Value", Width: 8, Align: AlignRight},
	)
	table.AddRow("1", "Laptop", "100.00")
	table.AddRow("12", "Стіл", "7.50")

	lines := renderPlain(table)
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	want := []string{
		"ID  Name    Value",
		"──  ──────  ────────",
		" 1  Laptop    100.00",
		"12  Стіл        7.50",
	}
	for i := range want {
		if strings.TrimRight(lines[i], " ") != want[i] {
			t.Errorf("line %d:\nwant %q\ngot  %q", i, want[i], lines[i])
		}
	}
}

func TestTableRender_MultilineAndMissingCells(t *testing.T) {
	table := NewTable(TableColumn{Header: "Name"}, TableColumn{Header: "Description"})
	table.AddRow("Desk", "line one\nline two")
	table.AddRow("Lamp")

	lines := renderPlain(table)
	if lines[2] != "Desk  line one line two" {
		t.Errorf("expected multiline cell flattened, got %q", lines[2])
	}
	if strings.TrimRight(lines[3], " ") != "Lamp" {
		t.Errorf("expected empty second cell, got %q", lines[3])
	}
}

func TestTableRender_NoColumns(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderList(t *testing.T) {
	out := ansi.Strip(RenderList([]string{"Andrii", "Taras"}))
	if out != "  • Andrii\n  • Taras\n" {
		t.Errorf("unexpected list %q", out)
	}
}
