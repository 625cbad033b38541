package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kunalpachori/hr-attrition-analysis/internal/config"
	"github.com/kunalpachori/hr-attrition-analysis/internal/logging"
	"github.com/kunalpachori/hr-attrition-analysis/internal/pipeline"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	employees := flag.String("employees", "", "HR attrition dataset (path or URL)")
	reference := flag.String("reference", "", "Prepared income reference table (path or URL)")
	adult := flag.String("adult", "", "Raw census dataset to build the reference from (path or URL)")
	out := flag.String("out", "", "Output directory for charts, tables and the run summary")
	hypothesis := flag.String("hypothesis", "", "Hypothesis selector: 1, 2, 3 or all")
	strictJoin := flag.Bool("strict-join", false, "Fail on ambiguous reference keys instead of keeping the first")
	writeReference := flag.Bool("write-reference", false, "Write the reference table built from the census data")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `hr-attrition-analysis — HR attrition hypothesis analyses

Usage:
  hr-attrition-analysis -employees hr.csv -reference reference.csv
  hr-attrition-analysis -employees hr.csv -adult adult.csv -write-reference
  hr-attrition-analysis -config config.yaml -hypothesis 3 -out results

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Hypotheses:
  1    salary shortfall against the expected income per age/education bracket
  2    correlation of annual income with age, education and attrition
  3    attrition by business travel, department and commute distance
  all  every hypothesis (default)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("hr-attrition-analysis %s\n", version)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Explicitly set flags override the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "employees":
			cfg.Inputs.Employees = *employees
		case "reference":
			cfg.Inputs.Reference = *reference
		case "adult":
			cfg.Inputs.Adult = *adult
		case "out":
			cfg.Output.Dir = *out
		case "hypothesis":
			cfg.Analysis.Hypothesis = *hypothesis
		case "strict-join":
			cfg.Analysis.StrictJoin = *strictJoin
		case "write-reference":
			cfg.Analysis.WriteReference = *writeReference
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})

	if *reference != "" && *adult != "" {
		fmt.Fprintln(os.Stderr, "Error: -reference and -adult are mutually exclusive")
		flag.Usage()
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build logger: %v\n", err)
		os.Exit(1)
	}

	runner, err := pipeline.NewRunner(cfg, logger)
	if err != nil {
		logger.Error("failed to set up pipeline", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	// One-shot batch run, no cancellation semantics.
	if err := runner.Run(context.Background()); err != nil {
		logger.Error("analysis run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Sync()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
