package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/config"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
}

func TestParsePathsUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"a.xlsx", "b.xlsx", "c.xlsx"}} {
		_, _, err := parsePaths(args)
		var xe *ExitError
		require.ErrorAs(t, err, &xe, "args %v", args)
		assert.Equal(t, ExitUsage, xe.Code)
		assert.Contains(t, xe.Message, "Usage:")
	}
}

func TestParsePathsExtension(t *testing.T) {
	_, _, err := parsePaths([]string{"ledger.csv"})
	var xe *ExitError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, ExitExtension, xe.Code)
	assert.Contains(t, xe.Message, "ledger.csv")
}

func TestParsePathsMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.xlsx")
	_, _, err := parsePaths([]string{missing})
	var xe *ExitError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, ExitMissing, xe.Code)
	assert.Contains(t, xe.Message, missing)
}

func TestParsePathsDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ledger.xlsx")
	touch(t, input)

	in, out, err := parsePaths([]string{input})
	require.NoError(t, err)
	assert.Equal(t, input, in)
	assert.Equal(t, "output.xlsx", out)
}

func TestParsePathsAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ledger.xlsx")
	touch(t, input)

	_, out, err := parsePaths([]string{input, filepath.Join(dir, "result")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "result")+".xlsx", out)

	_, out, err = parsePaths([]string{input, filepath.Join(dir, "result.xlsx")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "result.xlsx"), out)
}

func TestClassifyPermission(t *testing.T) {
	err := fmt.Errorf("opening workbook: %w", fs.ErrPermission)
	xe := classify(err, "/tmp/ledger.xlsx", "")
	assert.Equal(t, ExitPermission, xe.Code)
	assert.Contains(t, xe.Message, "/tmp/ledger.xlsx")

	xe = classify(err, "/tmp/out.xlsx", writeHint)
	assert.Contains(t, xe.Message, "close the file")
}

func TestClassifyCatchAll(t *testing.T) {
	xe := classify(errors.New("zip: not a valid zip file"), "in.xlsx", "")
	assert.Equal(t, ExitOther, xe.Code)
	assert.Contains(t, xe.Message, "unexpected error")
	assert.Contains(t, xe.Message, "zip: not a valid zip file")
}

func TestRunMissingConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ledger.xlsx")
	touch(t, input)

	err := run([]string{input}, filepath.Join(dir, "absent.json"))
	var xe *ExitError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, ExitOther, xe.Code)
}

func TestRunInvalidWorkbook(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ledger.xlsx")
	touch(t, input) // empty file, not a real workbook

	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, config.Save(cfgPath, config.Default()))

	err := run([]string{input}, cfgPath)
	var xe *ExitError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, ExitOther, xe.Code)
}
