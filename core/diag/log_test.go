package diag_test

import (
	"testing"

	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/source"
	"github.com/stretchr/testify/require"
)

func TestReportDoesNotPanicOnEmptyOrPopulated(t *testing.T) {
	logger := diag.NewLogger()
	require.NotNil(t, logger)

	diag.Report(logger, "test.lum", nil)
	diag.Report(logger, "test.lum", []diag.Diagnostic{
		diag.New(diag.ExpectedSemicolon, source.Range{}),
	})
}
