package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/solosec-io/solosec/internal/findings"
	"github.com/solosec-io/solosec/internal/summary"
)

const bannerWidth = 50

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	criticalColor = color.New(color.FgRed)
	highColor     = color.New(color.FgHiRed)
	mediumColor   = color.New(color.FgYellow)
	passColor     = color.New(color.FgGreen)
)

// IsTerminal reports whether f is an interactive terminal, which selects the
// table rendering over the plain fallback.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render prints the human summary and returns true when the run should be
// considered failed. The table and plain renderings report identical counts
// and verdict; only the layout differs.
func Render(w io.Writer, sum summary.Summary, outputFile string, failOnCritical, styled bool) bool {
	critical := sum.Counts[findings.SeverityCritical]
	high := sum.Counts[findings.SeverityHigh]
	medium := sum.Counts[findings.SeverityMedium]

	failed := failOnCritical && critical > 0

	criticalBD := summary.FormatBreakdown(sum.Breakdown[findings.SeverityCritical], findings.CategoryOrder)
	highBD := summary.FormatBreakdown(sum.Breakdown[findings.SeverityHigh], findings.CategoryOrder)

	line := strings.Repeat("-", bannerWidth)
	fmt.Fprintln(w, line)
	headerColor.Fprintln(w, "SCAN COMPLETE")
	fmt.Fprintln(w, line)

	if styled {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Severity", "Count", "Breakdown"})
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
		table.Append([]string{criticalColor.Sprint("Critical"), strconv.Itoa(critical), criticalBD})
		table.Append([]string{highColor.Sprint("High"), strconv.Itoa(high), highBD})
		table.Append([]string{mediumColor.Sprint("Medium"), strconv.Itoa(medium), ""})
		table.Render()
	} else {
		fmt.Fprintf(w, "%s %d%s\n", criticalColor.Sprint("Critical:"), critical, annotation(criticalBD))
		fmt.Fprintf(w, "%s     %d%s\n", highColor.Sprint("High:"), high, annotation(highBD))
		fmt.Fprintf(w, "%s   %d\n", mediumColor.Sprint("Medium:"), medium)
	}

	fmt.Fprintln(w, line)
	if failed {
		fmt.Fprintf(w, "%s Critical issues found. See %s\n", criticalColor.Sprint("FAIL:"), outputFile)
	} else {
		fmt.Fprintf(w, "%s No critical issues found. See %s\n", passColor.Sprint("PASS:"), outputFile)
	}
	return failed
}

func annotation(breakdown string) string {
	if breakdown == "" {
		return ""
	}
	return "   (" + breakdown + ")"
}
