package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ledger-service/internal/config"
	"ledger-service/internal/csvio"
	"ledger-service/internal/usecase/ledger"
	"ledger-service/pkg/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("Ledger: no .env file found, relying on system env vars")
	}

	cfg := config.Load()

	var logErrors bool
	flag.BoolVar(&logErrors, "e", cfg.LogErrors, "log unparseable input rows to stderr")
	flag.BoolVar(&logErrors, "log-errors", cfg.LogErrors, "log unparseable input rows to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-e|--log-errors] <transactions.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("transactions file %q doesn't exist: %v", path, err)
	}
	if !info.Mode().IsRegular() {
		log.Fatalf("%q is not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open transactions file: %v", err)
	}
	defer file.Close()

	diag := zap.NewNop()
	if logErrors {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{"stderr"}
		logger, err := zcfg.Build()
		if err != nil {
			log.Fatalf("failed to build diagnostics logger: %v", err)
		}
		defer logger.Sync()
		diag = logger.With(zap.String("run_id", utils.NewRunID()))
	}

	service := ledger.New()
	reader := csvio.NewReader(file, diag)
	for {
		tx, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("failed reading transactions: %v", err)
		}
		service.Record(tx)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := csvio.WriteSummary(out, service.Summary()); err != nil {
		log.Fatalf("failed writing account summary: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("failed flushing account summary: %v", err)
	}
}
