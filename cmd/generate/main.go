package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bank_statement_gen_go/config"
	"bank_statement_gen_go/services"
)

// Batch statement generator. Produces one or more PDFs (optionally with a
// matching xlsx register) without the web server.
func main() {
	cfg := config.Load()

	bank := flag.String("bank", "Chase", "bank name ("+strings.Join(services.BankNames(), ", ")+")")
	layout := flag.String("layout", "", "layout key; empty picks the bank's default")
	columnStyle := flag.String("column-style", "", "dynamic layout column style: sequential or two_column")
	seed := flag.Uint64("seed", 0, "data seed; 0 draws random data")
	styleSeed := flag.Int64("style-seed", 0, "dynamic style seed; 0 draws a random style")
	count := flag.Int("count", 1, "number of statements to generate")
	outDir := flag.String("out", cfg.OutputDir, "output directory")
	logoDir := flag.String("logos", cfg.LogoDir, "logo directory")
	xlsx := flag.Bool("xlsx", false, "also write the transaction register as xlsx")
	flag.Parse()

	if *count < 1 {
		log.Fatal("count must be at least 1")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	for i := 0; i < *count; i++ {
		dataSeed := *seed
		if dataSeed != 0 {
			dataSeed += uint64(i)
		}
		rec, err := services.GenerateStatement(*bank, *logoDir, dataSeed)
		if err != nil {
			log.Fatalf("Failed to generate data: %v", err)
		}

		opts := services.RenderOptions{
			Layout:      *layout,
			ColumnStyle: *columnStyle,
			StyleSeed:   *styleSeed,
		}
		if opts.Layout == "" {
			opts.Layout = services.DefaultLayout(*bank)
		}

		logger := services.NewLogCollector()
		pdfBytes, err := services.RenderStatement(rec, &opts, logger)
		if err != nil {
			log.Fatalf("Failed to render statement: %v", err)
		}

		stem := fmt.Sprintf("%s_statement_%02d", strings.ReplaceAll(strings.ToLower(*bank), " ", "_"), i+1)
		pdfPath := filepath.Join(*outDir, stem+".pdf")
		if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", pdfPath, err)
		}
		log.Printf("Wrote %s (%d bytes)", pdfPath, len(pdfBytes))

		if *xlsx {
			out, err := services.ExportStatementXLSX(rec)
			if err != nil {
				log.Fatalf("Failed to export workbook: %v", err)
			}
			xlsxPath := filepath.Join(*outDir, stem+".xlsx")
			if err := os.WriteFile(xlsxPath, out, 0o644); err != nil {
				log.Fatalf("Failed to write %s: %v", xlsxPath, err)
			}
			log.Printf("Wrote %s", xlsxPath)
		}

		for _, warning := range logger.Warnings() {
			log.Print(warning)
		}
	}
}
