// Command lumen is the front-end CLI: it lexes, sections, and parses a
// source file and reports the resulting diagnostics, the same three-stage
// pipeline the core packages implement (token -> section -> parser).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/avian-lovelace/compiler/core/cache"
	"github.com/avian-lovelace/compiler/core/diag"
	"github.com/avian-lovelace/compiler/core/encoding"
	"github.com/avian-lovelace/compiler/core/schema"
	"github.com/spf13/cobra"
)

var logger = diag.NewLogger()

func main() {
	var (
		configPath string
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:           "lumen",
		Short:         "Parse lumen source files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON dialect config file (see core/schema)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostic output")

	rootCmd.AddCommand(newParseCmd(&configPath, &noColor))
	rootCmd.AddCommand(newWatchCmd(&configPath, &noColor))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", colorize("Error:", colorRed, shouldUseColor(noColor)), err)
		os.Exit(1)
	}
}

func newParseCmd(configPath *string, noColor *bool) *cobra.Command {
	var (
		useCache bool
		wirePath string
		timing   bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			src, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}

			var c *cache.Cache
			if useCache && cfg.EnableParseCache {
				c = sharedCache()
			}

			start := time.Now()
			scope, diags, fromCache := runPipeline(file, src, c)
			elapsed := time.Since(start)

			useColorOut := shouldUseColor(*noColor)
			f := diagFormatter{Source: src, Filename: file, Color: useColorOut}
			for _, d := range diags {
				f.Format(os.Stderr, d)
			}
			diag.Report(logger, file, diags)

			if timing {
				cacheNote := ""
				if fromCache {
					cacheNote = " (cache hit)"
				}
				fmt.Fprintf(os.Stderr, "parsed in %v%s\n", elapsed, cacheNote)
			}

			if wirePath != "" {
				data, err := encoding.Encode(scope, diags)
				if err != nil {
					return fmt.Errorf("encoding parse result: %w", err)
				}
				if err := os.WriteFile(wirePath, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", wirePath, err)
				}
			}

			if len(diags) > 0 {
				return fmt.Errorf("found %d diagnostic(s)", len(diags))
			}
			fmt.Fprintf(os.Stdout, "%s: %d statement(s), no diagnostics\n", file, len(scope.Statements))
			return nil
		},
	}

	cmd.Flags().BoolVar(&useCache, "cache", true, "Reuse cached parse results keyed by source content")
	cmd.Flags().StringVar(&wirePath, "emit-cbor", "", "Write the parsed file and its diagnostics as CBOR to this path")
	cmd.Flags().BoolVar(&timing, "timing", false, "Report elapsed parse time")

	return cmd
}

func loadConfig(path string) (schema.Config, error) {
	if path == "" {
		return schema.Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return schema.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := schema.Validate(raw)
	if err != nil {
		return schema.Config{}, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

var processCache = cache.New()

// sharedCache returns the process-lifetime parse cache used by --cache and
// by watch mode, so repeated parses of an unchanged file within one process
// (one watch run) are memoized; the cache is not kept between processes.
func sharedCache() *cache.Cache {
	return processCache
}
