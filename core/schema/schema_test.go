package schema_test

import (
	"testing"

	"github.com/avian-lovelace/compiler/core/schema"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := schema.Default()
	require.Equal(t, 4, cfg.TabWidth)
	require.True(t, cfg.EnableParseCache)
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg, err := schema.Validate([]byte(`{"tabWidth": 2, "maxFileSizeBytes": 1024, "enableParseCache": false}`))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.TabWidth)
	require.Equal(t, 1024, cfg.MaxFileSizeBytes)
	require.False(t, cfg.EnableParseCache)
}

func TestValidatePartialConfigFillsDefaults(t *testing.T) {
	cfg, err := schema.Validate([]byte(`{"tabWidth": 8}`))
	require.NoError(t, err)
	require.Equal(t, 8, cfg.TabWidth)
	require.Equal(t, schema.Default().MaxFileSizeBytes, cfg.MaxFileSizeBytes)
}

func TestValidateRejectsOutOfRangeTabWidth(t *testing.T) {
	_, err := schema.Validate([]byte(`{"tabWidth": 0}`))
	require.Error(t, err)
}

func TestValidateRejectsUnknownProperty(t *testing.T) {
	_, err := schema.Validate([]byte(`{"unknownField": true}`))
	require.Error(t, err)
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	_, err := schema.Validate([]byte(`{not json`))
	require.Error(t, err)
}
