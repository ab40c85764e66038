// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contract-scan/internal/anchors"
	"contract-scan/internal/config"
	"contract-scan/internal/core"
	"contract-scan/internal/extract"
	"contract-scan/internal/injector"
	"contract-scan/internal/parties"
	"contract-scan/internal/render"
	"contract-scan/internal/storage"
	"contract-scan/internal/version"

	"contract-scan/internal/formatters"
	_ "contract-scan/internal/formatters/json"
	_ "contract-scan/internal/formatters/text"
	_ "contract-scan/internal/formatters/yaml"

	"golang.org/x/term"
)

// configFlags holds command line flag values
type configFlags struct {
	outputFormat   string
	severityLevels string
	checksToRun    string
	verbose        bool
	debug          bool
	noColor        bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format         string
	severityLevels string
	checksToRun    string
	verbose        bool
	debug          bool
	noColor        bool
}

// resolveConfiguration resolves final configuration values from config file and command line flags
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Severity levels
	final.severityLevels = "all" // default fallback
	if cfg != nil && cfg.Defaults.Severities != "" {
		final.severityLevels = cfg.Defaults.Severities
	}
	if isFlagSet("severity") && flags.severityLevels != "" {
		final.severityLevels = flags.severityLevels
	}

	// Checks to run
	final.checksToRun = "all" // default fallback
	if cfg != nil && cfg.Defaults.Checks != "" {
		final.checksToRun = cfg.Defaults.Checks
	}
	if isFlagSet("checks") && flags.checksToRun != "" {
		final.checksToRun = flags.checksToRun
	}

	// Verbose
	final.verbose = false // default fallback
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	final.debug = false // default fallback
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	final.noColor = false // default fallback
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	return final
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// buildMatcher compiles the anchor patterns from the config, falling back
// to the built-in defaults.
func buildMatcher(cfg *config.Config) (*anchors.PriorityMatcher, error) {
	if len(cfg.Anchors) == 0 {
		return anchors.Default(), nil
	}
	matcher, err := anchors.New(cfg.Anchors)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor pattern in config: %w", err)
	}
	return matcher, nil
}

// addContract registers the input file in the contract store: the upload is
// copied into the originals directory and a stamped v1 copy becomes the
// working version.
func addContract(store *storage.Store, inputFile string, now time.Time) (string, error) {
	if err := store.EnsureDirs(); err != nil {
		return "", err
	}

	cid, err := store.NextContractID()
	if err != nil {
		return "", err
	}

	originalName := filepath.Base(inputFile)
	ext := strings.ToLower(filepath.Ext(originalName))

	var v1File string
	switch ext {
	case ".pdf":
		v1File = render.VersionFilename(cid, 1, ".pdf")
		footer := render.VersionFooter(cid, 1, now)
		if err := render.StampPDFVersion(inputFile, filepath.Join(store.ContractsDir(), v1File), footer); err != nil {
			return "", fmt.Errorf("error stamping v1 file: %w", err)
		}
	default:
		text, err := extract.ReadContractText(inputFile)
		if err != nil {
			return "", err
		}
		v1File = render.VersionFilename(cid, 1, ".txt")
		stamped := strings.TrimRight(text, "\n") + "\n\n" + render.VersionFooter(cid, 1, now) + "\n"
		if err := render.WriteTextVersion(filepath.Join(store.ContractsDir(), v1File), stamped); err != nil {
			return "", fmt.Errorf("error writing v1 file: %w", err)
		}
	}

	return store.AddContract(inputFile, originalName, v1File, now)
}

// runInjection reads the contract, injects the clause at the best anchor
// position and writes the result.
func runInjection(inputFile, clause, outputFile string, matcher *anchors.PriorityMatcher) error {
	text, err := extract.ReadContractText(inputFile)
	if err != nil {
		return err
	}

	updated := injector.Inject(text, clause, matcher)

	if outputFile != "" {
		if err := render.WriteTextVersion(outputFile, updated); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Injected clause written to %s\n", outputFile)
		return nil
	}

	fmt.Print(updated)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "contract-scan analyzes contract documents for compliance gaps, regulation matches and risk.\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  contract-scan -file <contract.txt|contract.pdf> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	// Define command line flags
	inputFile := flag.String("file", "", "Path to the input contract (.txt or .pdf)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json, yaml (default: text)")
	severityLevels := flag.String("severity", "", "Severity levels to display: high, medium, low, or combinations like 'high,medium'")
	checksToRun := flag.String("checks", "", "Specific checks to run: COMPLIANCE, REGULATION, RISK, or combinations like 'COMPLIANCE,RISK'")
	regsFile := flag.String("regs", "", "Path to the tracked regulations file (JSON array or id-keyed object)")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Display detailed information for each finding")
	debug := flag.Bool("debug", false, "Enable debug logging to show extraction and analysis flow")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showSections := flag.Bool("sections", false, "Include the segmented section view in the output")
	showParties := flag.Bool("parties", false, "Print the detected contracting parties before the findings")
	addToStore := flag.Bool("add", false, "Register the contract in the store and produce its stamped v1 copy")
	injectClause := flag.String("inject-clause", "", "Clause text to inject at the best anchor position (prints the result)")
	injectFrom := flag.String("inject-file", "", "Path to a file whose contents are injected at the best anchor position")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Usage = printUsage
	flag.Parse()

	// Handle version command
	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Handle help command
	if *showHelp {
		printUsage()
		return
	}

	// Load configuration and resolve precedence: defaults < config file < flags
	cfg := config.LoadConfigOrDefault(*configFile)
	if *regsFile != "" {
		cfg.Storage.RegulationsFile = *regsFile
	}

	flags := &configFlags{
		outputFormat:   *outputFormat,
		severityLevels: *severityLevels,
		checksToRun:    *checksToRun,
		verbose:        *verbose,
		debug:          *debug,
		noColor:        *noColor,
	}
	finalConfig := resolveConfiguration(cfg, flags)

	// Disable colors when stdout is not a terminal (piped or redirected)
	if !isTerminal(os.Stdout) {
		finalConfig.noColor = true
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: Input file is required\n\n")
		printUsage()
		os.Exit(1)
	}

	matcher, err := buildMatcher(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Clause injection mode: inject and exit, no analysis
	if *injectClause != "" || *injectFrom != "" {
		clause := *injectClause
		if *injectFrom != "" {
			data, err := os.ReadFile(filepath.Clean(*injectFrom))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: reading clause file: %v\n", err)
				os.Exit(1)
			}
			clause = strings.TrimSpace(string(data))
		}
		if err := runInjection(*inputFile, clause, *outputFile, matcher); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	store := storage.NewStore(cfg)

	// Register the contract in the store before analyzing it
	if *addToStore {
		cid, err := addContract(store, *inputFile, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Registered %s as %s (v1)\n", filepath.Base(*inputFile), cid)
	}

	// Tracked regulations are optional; analysis proceeds without them
	regulations, err := store.LoadRegulations()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load regulations: %v\n", err)
	}

	result, err := core.AnalyzeFile(core.AnalyzeConfig{
		FilePath:    *inputFile,
		Checks:      strings.Split(finalConfig.checksToRun, ","),
		Regulations: regulations,
		Debug:       finalConfig.debug,
		Verbose:     finalConfig.verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showParties {
		if first, second, ok := parties.Find(result.Document.Text); ok {
			fmt.Printf("Parties: %s / %s\n\n", first, second)
		} else {
			fmt.Printf("Parties: not detected\n\n")
		}
	}

	options := formatters.FormatterOptions{
		SeverityLevel: core.ParseSeverityLevels(finalConfig.severityLevels),
		Verbose:       finalConfig.verbose,
		NoColor:       finalConfig.noColor,
		ShowSections:  *showSections,
	}

	output, err := formatters.Export(finalConfig.format, result.Document, result.Findings, result.Risk, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", *outputFile)
		return
	}

	fmt.Print(output)
}
