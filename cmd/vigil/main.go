// Command vigil issues a concurrent burst of GET requests against a target
// URL and reports reliability and latency statistics against configurable
// thresholds.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vigil/internal/aggregator"
	"vigil/internal/config"
	"vigil/internal/core"
	"vigil/internal/dispatcher"
	"vigil/internal/errlog"
	"vigil/internal/executor"
	"vigil/internal/progress"
	"vigil/internal/ratelimit"
	"vigil/internal/stats"
	"vigil/internal/transport"
)

const (
	ExitSuccess     = 0
	ExitCheckFailed = 1
	ExitError       = 2
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	url := flag.String("url", "", "target URL (overrides config)")
	requests := flag.Int("requests", 0, "number of probes to issue (overrides config)")
	concurrency := flag.Int("concurrency", 0, "maximum in-flight probes (overrides config)")
	timeout := flag.Duration("timeout", 0, "per-probe timeout (overrides config)")
	threshold := flag.Duration("threshold", 0, "mean latency threshold (overrides config)")
	successRate := flag.Float64("success-rate", -1, "required success rate in [0,1] (overrides config)")
	rps := flag.Int("rps", 0, "probe pacing in requests per second, 0 = unpaced (overrides config)")
	errlogPath := flag.String("errlog", "", "append classified failures to this file")
	output := flag.String("output", "text", "output format: text, json")
	quiet := flag.Bool("quiet", false, "suppress progress output during the run")
	verbose := flag.Bool("verbose", false, "enable debug output (request/response logging)")
	flag.Parse()

	if *output != "text" && *output != "json" {
		fmt.Fprintf(os.Stderr, "error: --output must be 'text' or 'json', got %q\n", *output)
		os.Exit(ExitError)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitError)
		}
		cfg = loaded
	}
	if *url != "" {
		cfg.TargetURL = *url
	}
	if *requests > 0 {
		cfg.Requests = *requests
	}
	if *concurrency > 0 {
		cfg.Concurrency = *concurrency
	}
	if *timeout > 0 {
		cfg.RequestTimeout = *timeout
	}
	if *threshold > 0 {
		cfg.PerformanceThreshold = *threshold
	}
	if *successRate >= 0 {
		cfg.RequiredSuccessRate = *successRate
	}
	if *rps > 0 {
		cfg.RPS = *rps
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(ExitError)
	}

	var sink core.ErrorLog = errlog.Nop{}
	if *errlogPath != "" {
		fileSink, err := errlog.NewFile(*errlogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitError)
		}
		defer fileSink.Close()
		sink = fileSink
	}

	var debugLogger *transport.DebugLogger
	if *verbose {
		debugLogger = transport.NewDebugLogger(os.Stderr)
	}

	agg := aggregator.New(sink)
	client := transport.NewClient(cfg.Concurrency, debugLogger)
	exec := executor.New(client, core.RealClock{}, cfg)
	disp := dispatcher.New(exec, agg, ratelimit.New(cfg.RPS))

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		if !*quiet {
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		}
		cancel()
	}()

	prog := progress.NewProgress(agg, cfg.Requests, *quiet)
	prog.Printf("Vigil starting: %d probes, concurrency %d, timeout %v, target %s",
		cfg.Requests, cfg.Concurrency, cfg.RequestTimeout, cfg.TargetURL)

	prog.Start()
	start := time.Now()
	rs, err := disp.Run(ctx, cfg, cfg.Requests)
	prog.Stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	prog.Printf("Run finished in %v", time.Since(start).Round(time.Millisecond))

	report := stats.Analyze(rs, cfg)

	if *output == "json" {
		stats.FormatJSON(os.Stdout, report)
	} else {
		stats.FormatText(os.Stdout, report)
	}

	if !report.Passed() {
		if *output == "text" {
			fmt.Fprintln(os.Stderr, "\nValidation checks failed!")
		}
		os.Exit(ExitCheckFailed)
	}

	os.Exit(ExitSuccess)
}
