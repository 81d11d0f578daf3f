package reporting

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/tab-composer/internal/fretboard"
)

// Each tablature column is one melody note, four runes wide.
const cellWidth = 4

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputResult prints the tablature and a summary table to the console.
func (r *DefaultConsoleReporter) OutputResult(board *fretboard.Fretboard, result *Result) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("🎼 GENERATED MELODY (Tablature)")
	fmt.Println(strings.Repeat("=", 50))

	for _, line := range TablatureLines(board, result.Notes) {
		fmt.Println(line)
	}
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("COMPOSITION SUMMARY")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🎵 Notes", len(result.Notes)},
		{"🏆 Score", fmt.Sprintf("%.0f", result.Score)},
		{"🎚 Tempo", fmt.Sprintf("%d BPM", result.Tempo)},
		{"🧬 Generations", result.Generations},
		{"⏱ Runtime", result.Elapsed.Round(time.Millisecond)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, WidthMax: 30, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// TablatureLines renders one line per string, highest-pitched string first.
// Each column holds the fret number when the note sounds on that string and
// filler dashes otherwise.
func TablatureLines(board *fretboard.Fretboard, notes []Note) []string {
	order := stringOrder(board)

	lines := make([]string, len(order))
	for li, s := range order {
		label := fretboard.ClassName(board.OpenPitch(s))
		if li == 0 {
			// Tab convention: the top (highest) string is written lowercase.
			label = strings.ToLower(label)
		}
		lines[li] = label + "|"
	}

	filler := strings.Repeat("-", cellWidth)
	for _, n := range notes {
		for li, s := range order {
			if s == n.String {
				cell := fmt.Sprintf("-%d-", n.Fret)
				if len(cell) < cellWidth {
					cell += strings.Repeat("-", cellWidth-len(cell))
				}
				lines[li] += cell
			} else {
				lines[li] += filler
			}
		}
	}
	return lines
}

// stringOrder returns string indices sorted by descending open pitch.
func stringOrder(board *fretboard.Fretboard) []int {
	order := make([]int, board.StringCount())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return board.OpenPitch(order[a]) > board.OpenPitch(order[b])
	})
	return order
}
