package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconDot     = "•"
)

// Success logs a success message at Info level, prefixed with a check mark.
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message, used for tick-by-tick narration during a
// scenario run.
func Progress(args ...interface{}) {
	defaultLogger.Info(fmt.Sprint(args...))
}

func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

// LogSection prints a visual section separator, used between scenario
// phases (spawn, tick loop, report).
func LogSection(title string) {
	line := strings.Repeat("=", 50)
	if color.NoColor {
		fmt.Println(line)
		fmt.Println(title)
		fmt.Println(line)
		return
	}
	cyan := color.New(color.FgCyan)
	cyan.Println(line)
	color.New(color.FgCyan, color.Bold).Println(title)
	cyan.Println(line)
}

// LogKeyValue prints a single key/value pair, used for scenario summary
// lines (reference point, tick count, outcome).
func LogKeyValue(key string, value interface{}) {
	if color.NoColor {
		fmt.Printf("%s: %v\n", key, value)
		return
	}
	fmt.Printf("%s %v\n", color.CyanString(key+":"), value)
}

// Table is a fixed-width console table, used to render a battlefield
// Observation or an end-of-run Summary.
type Table struct {
	headers []string
	rows    [][]string
}

func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

func (t *Table) Print() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range t.headers {
		fmt.Printf("%-*s  ", widths[i], h)
	}
	fmt.Println()
	for i := range t.headers {
		fmt.Print(strings.Repeat("-", widths[i]) + "  ")
	}
	fmt.Println()
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Printf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Println()
	}
}
