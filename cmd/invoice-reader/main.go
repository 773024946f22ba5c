package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/zombor/invoice-reader/internal/batch"
	"github.com/zombor/invoice-reader/internal/scanning"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	fs := ff.NewFlagSet("invoice-reader")
	var (
		folder          = fs.StringLong("folder", "ficheros", "Directory containing the invoice PDFs")
		detailedOutput  = fs.StringLong("detailed-output", "datos_de_facturas.xlsx", "Detailed report path")
		flatOutput      = fs.StringLong("flat-output", "datos_simplificados.xlsx", "Flat report path")
		extractorKind   = fs.StringLong("extractor", scanning.KindFitz, "Text extractor: 'fitz' or 'plain'")
		continueOnError = fs.BoolLong("continue-on-error", "Skip PDFs that cannot be read instead of aborting")
		showVersion     = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("INVOICE_READER"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	extractor, err := scanning.New(*extractorKind)
	if err != nil {
		slog.Error("Invalid extractor", "error", err)
		os.Exit(1)
	}
	defer extractor.Close()

	cfg := batch.Config{
		Folder:          *folder,
		DetailedPath:    *detailedOutput,
		FlatPath:        *flatOutput,
		ContinueOnError: *continueOnError,
	}

	slog.Info("Processing folder", "folder", cfg.Folder, "extractor", *extractorKind)
	result, err := batch.NewProcessor(extractor).ProcessFolder(cfg)
	if err != nil {
		slog.Error("Batch failed", "error", err)
		extractor.Close()
		os.Exit(1)
	}

	slog.Info("Batch complete",
		"invoices", len(result.Records),
		"failures", len(result.Failures),
		"detailed", cfg.DetailedPath,
		"flat", cfg.FlatPath,
	)
	for _, failure := range result.Failures {
		slog.Warn("Skipped invoice", "file", failure.Filename, "error", failure.Err)
	}
}
