package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// FormatText writes the report in human-readable form.
func FormatText(w io.Writer, r *Report) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Vigil - Endpoint Validation Results")
	fmt.Fprintln(w, "===================================")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Duration:        %v\n", r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Probes:          %d\n", r.Count)
	fmt.Fprintf(w, "Successful:      %d\n", r.SuccessCount)
	fmt.Fprintf(w, "Software Errors: %d\n", r.SoftwareErrors)
	fmt.Fprintf(w, "Hardware Errors: %d\n", r.HardwareErrors)
	fmt.Fprintf(w, "Error Rate:      %.2f%%\n", r.ErrorRate*100)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Latency (successful probes):")
	fmt.Fprintf(w, "  Min:     %.2f ms\n", r.MinLatencyMs)
	fmt.Fprintf(w, "  Mean:    %.2f ms\n", r.MeanLatencyMs)
	fmt.Fprintf(w, "  Std Dev: %.2f ms\n", r.StdDevMs)
	fmt.Fprintf(w, "  P95:     %.2f ms\n", r.P95LatencyMs)
	fmt.Fprintf(w, "  Max:     %.2f ms\n", r.MaxLatencyMs)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Checks:")
	fmt.Fprintf(w, "  %s reliability (success rate %.2f%%)\n",
		checkSymbol(r.ReliabilityPassed), (1-r.ErrorRate)*100)
	fmt.Fprintf(w, "  %s performance (mean latency %.2f ms)\n",
		checkSymbol(r.PerformancePassed), r.MeanLatencyMs)
}

func checkSymbol(passed bool) string {
	if passed {
		return "✓"
	}
	return "✗"
}

// FormatJSON writes the report in JSON form.
func FormatJSON(w io.Writer, r *Report) {
	output := struct {
		Elapsed           string  `json:"elapsed"`
		Count             int     `json:"count"`
		SuccessCount      int     `json:"successCount"`
		SoftwareErrors    int     `json:"softwareErrors"`
		HardwareErrors    int     `json:"hardwareErrors"`
		ErrorRate         float64 `json:"errorRate"`
		MeanLatencyMs     float64 `json:"meanLatencyMs"`
		StdDevMs          float64 `json:"stdDevMs"`
		P95LatencyMs      float64 `json:"p95LatencyMs"`
		MinLatencyMs      float64 `json:"minLatencyMs"`
		MaxLatencyMs      float64 `json:"maxLatencyMs"`
		ReliabilityPassed bool    `json:"reliabilityPassed"`
		PerformancePassed bool    `json:"performancePassed"`
	}{
		Elapsed:           r.Elapsed.Round(time.Millisecond).String(),
		Count:             r.Count,
		SuccessCount:      r.SuccessCount,
		SoftwareErrors:    r.SoftwareErrors,
		HardwareErrors:    r.HardwareErrors,
		ErrorRate:         r.ErrorRate,
		MeanLatencyMs:     r.MeanLatencyMs,
		StdDevMs:          r.StdDevMs,
		P95LatencyMs:      r.P95LatencyMs,
		MinLatencyMs:      r.MinLatencyMs,
		MaxLatencyMs:      r.MaxLatencyMs,
		ReliabilityPassed: r.ReliabilityPassed,
		PerformancePassed: r.PerformancePassed,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output) // stdout errors are unrecoverable
}
