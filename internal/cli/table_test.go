package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Colour", "Ratio"})

	table.AddRow([]string{"#000000", "21.00"})
	table.AddRow([]string{"#777777"})
	table.AddRow([]string{"#ffffff", "1.00", "extra"})

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("padded cell = %q, want empty", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Path", "Ratio", "Result"})
	table.AddRow([]string{"body > p", "4.48", "Fail"})
	table.AddRow([]string{"body > h1.title", "12.63", "AAA"})

	want := strings.Join([]string{
		"Path             Ratio  Result",
		"---------------  -----  ------",
		"body > p         4.48   Fail",
		"body > h1.title  12.63  AAA",
		"",
	}, "\n")

	if diff := cmp.Diff(want, table.Render()); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRenderIgnoresANSIAndCountsRunes(t *testing.T) {
	table := NewTable([]string{"Swatch", "Note"})
	table.AddRow([]string{"\x1b[48;2;255;152;0m  \x1b[0m", "تعديل"})
	table.AddRow([]string{"ab", "x"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines", len(lines))
	}
	// "Swatch" is six columns wide; both data rows pad to it.
	if got := displayWidth(lines[2]); got != displayWidth(lines[1]) {
		t.Errorf("swatch row width %d, separator width %d\n%s", got, displayWidth(lines[1]), table.Render())
	}
	if !strings.HasPrefix(lines[3], "ab      x") {
		t.Errorf("plain row = %q", lines[3])
	}
}

func TestTableWrap(t *testing.T) {
	table := NewTable([]string{"Text", "N"})
	table.SetColumnMaxWidth(0, 10)
	table.AddRow([]string{"the quick brown fox", "1"})

	want := strings.Join([]string{
		"Text       N",
		"---------  -",
		"the quick  1",
		"brown fox",
		"",
	}, "\n")
	if diff := cmp.Diff(want, table.Render()); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"no limit", "anything goes here", 0, []string{"anything goes here"}},
		{"fits", "short", 10, []string{"short"}},
		{"words", "one two three", 7, []string{"one two", "three"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"runes", "ضبط اللون الأساسي", 9, []string{"ضبط اللون", "الأساسي"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, wrapText(tt.text, tt.width)); diff != "" {
				t.Errorf("wrapText mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight longer = %q", got)
	}
}
