package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"attendcli/internal/app"
)

func main() {
	inPath := flag.String("in", "attendance.csv", "input attendance table (.csv or .xlsx)")
	outPath := flag.String("out", "timesheets_report.xlsx", "output report workbook path")
	csvDir := flag.String("csv-dir", "", "optional directory for CSV mirrors of the daily and summary tables")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	application, err := app.NewApplication(*configFile)
	if err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	opts := app.Options{
		InputPath:  *inPath,
		OutputPath: *outPath,
		CSVDir:     *csvDir,
	}
	if err := application.Run(context.Background(), opts); err != nil {
		application.Logger.Error("report generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Progress line for wrapping scripts.
	fmt.Printf("Report saved to %s\n", *outPath)
}
