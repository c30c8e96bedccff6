package unitest

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

var (
	passTheme = color.New(color.FgGreen)
	failTheme = color.New(color.FgRed)
)

// reporter streams the console report during a run: the header first, one
// status line per executed test, then the summary block. Write errors are
// ignored; the report is console output, not a data channel.
type reporter struct {
	out   io.Writer
	color bool
	width int
}

func newReporter(out io.Writer, enableColor bool, width int) *reporter {
	return &reporter{out: out, color: enableColor, width: width}
}

func (r *reporter) header(suite string, count int) {
	fmt.Fprintf(r.out, "Running %d Tests for Suite %s\n", count, suite)
}

// result prints the test name padded to the column width with the status
// token right-aligned in ten columns, then the failure message indented on
// its own line for failed tests.
func (r *reporter) result(outcome TestResult) {
	status := fmt.Sprintf("%10s", outcome.Status)
	if outcome.Status == StatusFail {
		status = r.paint(failTheme, status)
	} else {
		status = r.paint(passTheme, status)
	}
	fmt.Fprintf(r.out, "%-*s%s\n", r.width, outcome.Name, status)
	if outcome.Status == StatusFail {
		fmt.Fprintf(r.out, "  %s\n", outcome.Message)
	}
}

func (r *reporter) summary(res *Result) {
	if res.Failed > 0 {
		fmt.Fprintf(r.out, "\nRun/Passed/Failed :%d/%d/%d\n", res.Run, res.Passed(), res.Failed)
		fmt.Fprintln(r.out, r.paint(failTheme, "FAILED"))
		return
	}
	if res.Run > 0 {
		fmt.Fprintf(r.out, "\nPassed/Run: %d/%d\n", res.Passed(), res.Run)
	}
	fmt.Fprintln(r.out, r.paint(passTheme, "PASSED"))
}

// paint renders s in the given style when color is enabled and returns it
// untouched otherwise.
func (r *reporter) paint(theme color.Style, s string) string {
	if r.color {
		return theme.Sprint(s)
	}
	return s
}
