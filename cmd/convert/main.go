// Command convert turns a classifier workbook into the JavaScript data
// file consumed by the classifier library web application.
//
// Usage:
//
//	convert input.xlsx output.js
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/config"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/convert"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/normalize"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/report"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/store"
)

var (
	sheetName = flag.String("sheet", "", "workbook sheet name (overrides config.toml)")
	noHistory = flag.Bool("no-history", false, "skip recording this run in the history database")
)

func usage() {
	fmt.Println("Usage: convert [flags] input.xlsx output.js")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if *sheetName != "" {
		cfg.Convert.SheetName = *sheetName
	}

	result, err := convert.Run(convert.Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		SheetName:  cfg.Convert.SheetName,
		Generator:  cfg.Convert.Generator,
		Rules:      normalize.DefaultRules(),
		Out:        os.Stdout,
	})

	if cfg.Data.History && !*noHistory {
		recordHistory(cfg, inputPath, outputPath, result, err)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	report.New(os.Stdout).Done()
}

// recordHistory logs the run in the SQLite history. Best-effort: a
// history failure never fails a conversion.
func recordHistory(cfg *config.AppConfig, inputPath, outputPath string, result *convert.Result, runErr error) {
	st, err := store.New(config.HistoryDBPath(cfg))
	if err != nil {
		log.Printf("warning: conversion history unavailable: %v", err)
		return
	}
	defer st.Close()

	run := &store.ConversionRun{
		RunID:      uuid.New().String(),
		InputFile:  inputPath,
		OutputFile: outputPath,
		Status:     store.RunStatusOK,
		StartedAt:  time.Now(),
	}
	if result != nil {
		run.RunID = result.RunID
		run.RecordCount = result.Records
		run.WarningCount = len(result.Issues)
		run.StartedAt = result.StartedAt
	}
	if runErr != nil {
		run.Status = store.RunStatusError
		run.ErrorMessage = runErr.Error()
	}

	if err := st.RecordRun(run); err != nil {
		log.Printf("warning: failed to record conversion history: %v", err)
	}
}
