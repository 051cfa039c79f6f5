package output

import (
	"strings"
	"testing"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if len(got) != tc.want {
				t.Errorf("pad(%q, %d) len = %d, want %d", tc.input, tc.width, len(got), tc.want)
			}
		})
	}
}

func TestCellWidth_Runes(t *testing.T) {
	if got := cellWidth("héllo"); got != 5 {
		t.Errorf("cellWidth(héllo) = %d, want 5", got)
	}
	if got := cellWidth(""); got != 0 {
		t.Errorf("cellWidth(empty) = %d, want 0", got)
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Language", "Level")
	tbl.AddRow("Go", "expert")
	tbl.AddRow("Python", "intermediate")

	out := tbl.Render()

	for _, want := range []string{"Language", "Level", "Go", "Python", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	// Count lines: header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if out := tbl.Render(); out != "" {
		t.Errorf("expected empty output for empty table, got %q", out)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "LongHeader")
	tbl.AddRow("VeryLongValue", "X")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "VeryLongValue") {
		t.Error("expected data row to contain 'VeryLongValue'")
	}
}

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		score      float64
		width      int
		wantFilled int
	}{
		{100, 10, 10},
		{50, 10, 5},
		{0, 10, 0},
		{150, 10, 10}, // clamped
		{-5, 10, 0},   // clamped
	}

	for _, tc := range tests {
		got := ScoreBar(tc.score, tc.width)
		filled := strings.Count(got, "█")
		if filled != tc.wantFilled {
			t.Errorf("ScoreBar(%v, %d) filled = %d, want %d", tc.score, tc.width, filled, tc.wantFilled)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Errorf("Sparkline(nil) = %q, want empty", got)
	}

	flat := Sparkline([]int{0, 0, 0})
	if flat != "▁▁▁" {
		t.Errorf("Sparkline(zeros) = %q, want ▁▁▁", flat)
	}

	ramp := []rune(Sparkline([]int{0, 5, 10}))
	if len(ramp) != 3 {
		t.Fatalf("expected 3 glyphs, got %d", len(ramp))
	}
	if ramp[0] != '▁' || ramp[2] != '█' {
		t.Errorf("Sparkline ramp = %q, want lowest first and highest last", string(ramp))
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	if rendered := StyleHeader.Render("test"); strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}
	SetNoColor(false)
}
