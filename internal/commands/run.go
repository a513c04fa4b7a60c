package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/pipeline"
	"github.com/ledgerbook-dev/ledgerbook/internal/schema"
	"github.com/ledgerbook-dev/ledgerbook/internal/workbook"
)

const xlsxExt = ".xlsx"

// run is the whole batch: validate paths, load config, read, normalize,
// write. Every failure is mapped to an ExitError so main can exit with the
// documented code.
func run(args []string, configPath string) error {
	input, output, err := parsePaths(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return classify(err, configPath, "")
	}
	sch, err := schema.New(cfg.Columns)
	if err != nil {
		return classify(err, configPath, "")
	}

	sheets, err := workbook.Read(input)
	if err != nil {
		return classify(err, input, "")
	}

	result, err := pipeline.Run(sheets, cfg)
	if err != nil {
		return classify(err, input, "")
	}

	if err := workbook.EnsureDestination(output); err != nil {
		return classify(err, output, writeHint)
	}
	if err := workbook.Write(output, sch, result.Table, result.Summaries); err != nil {
		return classify(err, output, writeHint)
	}

	fmt.Printf("Workbook saved successfully to '%s'!\n", output)
	return nil
}

// parsePaths applies the argument contract: one or two positionals, input
// must carry the xlsx extension and exist, output defaults to output.xlsx
// and gets the extension appended when missing.
func parsePaths(args []string) (input, output string, err error) {
	if len(args) < 1 || len(args) > 2 {
		return "", "", exitErrorf(ExitUsage, "Usage: ledgerbook <input_path.xlsx> [<output_path>]")
	}

	input = args[0]
	if !strings.HasSuffix(input, xlsxExt) {
		return "", "", exitErrorf(ExitExtension, "Error: Input file must be an Excel file with %s extension: %s", xlsxExt, input)
	}

	output = "output" + xlsxExt
	if len(args) == 2 {
		output = args[1]
		if !strings.HasSuffix(output, xlsxExt) {
			output += xlsxExt
		}
	}

	if _, err := os.Stat(input); errors.Is(err, fs.ErrNotExist) {
		return "", "", exitErrorf(ExitMissing, "Error: Could not find '%s'", input)
	}

	return input, output, nil
}

// writeHint is appended to permission errors on the output path; the usual
// culprit is the file being open in a spreadsheet application.
const writeHint = " Please close the file if it is open in another application."

// classify maps an error to the documented exit codes: permission problems
// name the offending path and exit 4, everything else is the catch-all 5.
func classify(err error, path, hint string) *ExitError {
	if errors.Is(err, fs.ErrPermission) {
		return exitErrorf(ExitPermission, "Error: Permission denied for '%s'.%s", path, hint)
	}
	return exitErrorf(ExitOther, "An unexpected error has occurred: %v.", err)
}
