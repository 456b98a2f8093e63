package main

import (
	"io"
	"os"

	"github.com/pairdiff/pairdiff"
	"github.com/pairdiff/pairdiff/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	cliOpts := runner.ParseFlags()

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	rec, err := pairdiff.New(&pairdiff.Options{
		Path: pairdiff.DefaultInputFile,
	})
	if err != nil {
		gologger.Fatal().Msgf("failed to create reconciler got %v", err)
	}

	if err = rec.WriteResults(output); err != nil {
		gologger.Fatal().Msgf("failed to reconcile %v got %v", pairdiff.DefaultInputFile, err)
	}

	if cliOpts.Report != "" {
		report, err := rec.Report()
		if err != nil {
			gologger.Fatal().Msgf("failed to summarize %v got %v", pairdiff.DefaultInputFile, err)
		}
		if err := report.Save(cliOpts.Report); err != nil {
			gologger.Error().Msgf("failed to write report to file got %v", err)
		} else {
			gologger.Info().Msgf("Saved run summary to %v", cliOpts.Report)
		}
	}

	if cliOpts.Verify != "" {
		expected, err := pairdiff.LoadReport(cliOpts.Verify)
		if err != nil {
			gologger.Fatal().Msgf("failed to read expected report %v got %v", cliOpts.Verify, err)
		}
		report, err := rec.Report()
		if err != nil {
			gologger.Fatal().Msgf("failed to summarize %v got %v", pairdiff.DefaultInputFile, err)
		}
		if err := report.Compare(expected); err != nil {
			gologger.Fatal().Msgf("verification against %v failed: %v", cliOpts.Verify, err)
		}
		gologger.Info().Msgf("Results match %v", cliOpts.Verify)
	}
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
