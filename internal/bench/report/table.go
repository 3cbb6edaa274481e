package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Expression Suite Benchmark ===\n")

	for _, jr := range r.Jobs {
		fmt.Fprintf(tw, "\n--- Job: %s (suite %s) ---\n\n", jr.JobName, jr.SuiteName)
		writeSummaryTable(tw, &jr)
		writePerCaseTable(tw, &jr)
	}

	tw.Flush()
}

func writeRow(tw io.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func writeHeader(tw io.Writer, cols ...string) {
	writeRow(tw, cols...)
	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}

func writeSummaryTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Summary\n\n")
	writeHeader(tw, "Engine", "Passed", "Failed", "Errors", "Pass rate", "Min", "p50", "p90", "p99", "Max", "Samples")

	for _, agg := range jr.Aggregated {
		s := agg.Latency
		writeRow(tw,
			agg.EngineName,
			fmt.Sprintf("%d/%d", agg.Passed, agg.CaseCount),
			fmt.Sprintf("%d", agg.Failed),
			fmt.Sprintf("%d", agg.ErrorCount),
			fmt.Sprintf("%.2f%%", agg.PassRate*100),
			fmtDuration(s.Min),
			fmtDuration(s.Median()),
			fmtDuration(s.P90()),
			fmtDuration(s.P99()),
			fmtDuration(s.Max),
			fmt.Sprintf("%d", s.SampleCount),
		)
	}

	fmt.Fprintln(tw)
}

func writePerCaseTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Per-Case Results\n\n")
	writeHeader(tw, "Case", "Engine", "Expr", "Expected", "Got", "p50", "Status")

	for _, e := range jr.PerCase {
		writeRow(tw,
			e.CaseID,
			e.EngineName,
			e.Expr,
			e.Expected,
			e.Got,
			fmtDuration(e.Latency.Median()),
			status(e),
		)
	}

	fmt.Fprintln(tw)
}

func status(e Entry) string {
	switch {
	case e.Error != "":
		return "ERR"
	case e.Unstable:
		return "UNSTABLE"
	case e.Passed:
		return "OK"
	default:
		return "FAIL"
	}
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
