// Package schema validates the pipeline's own dialect configuration (the
// handful of knobs a caller may set before invoking the parsing core, such
// as tab width for column accounting and whether the parse cache is on)
// against a fixed JSON Schema document, the same way the teacher validates
// decorator parameter values before trusting them.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchemaJSON is the fixed schema for Config. It is compiled once, at
// package init, rather than per call.
const configSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"tabWidth": {"type": "integer", "minimum": 1, "maximum": 16},
		"maxFileSizeBytes": {"type": "integer", "minimum": 1},
		"enableParseCache": {"type": "boolean"}
	}
}`

var compiled *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	const resourceURL = "mem://lumen/config.schema.json"
	if err := compiler.AddResource(resourceURL, bytes.NewReader([]byte(configSchemaJSON))); err != nil {
		panic(fmt.Sprintf("schema: config schema rejected: %v", err))
	}
	var err error
	compiled, err = compiler.Compile(resourceURL)
	if err != nil {
		panic(fmt.Sprintf("schema: config schema failed to compile: %v", err))
	}
}

// Config is the dialect configuration accepted by cmd/lumen and by callers
// embedding the core directly.
type Config struct {
	TabWidth         int  `json:"tabWidth"`
	MaxFileSizeBytes int  `json:"maxFileSizeBytes"`
	EnableParseCache bool `json:"enableParseCache"`
}

// Default returns the configuration used when none is supplied.
func Default() Config {
	return Config{TabWidth: 4, MaxFileSizeBytes: 8 << 20, EnableParseCache: true}
}

// Validate parses raw as JSON, validates it against the fixed config
// schema, and on success decodes it into a Config.
func Validate(raw []byte) (Config, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return Config{}, fmt.Errorf("schema: config is not valid JSON: %w", err)
	}
	if err := compiled.Validate(generic); err != nil {
		return Config{}, fmt.Errorf("schema: config failed validation: %w", err)
	}
	cfg := Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("schema: config decode failed: %w", err)
	}
	return cfg, nil
}
