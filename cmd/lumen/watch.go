package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(configPath *string, noColor *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a source file on every write and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting file watcher: %w", err)
			}
			defer watcher.Close()

			dir := filepath.Dir(file)
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}

			useColorOut := shouldUseColor(*noColor)
			c := sharedCache()
			reparse := func() {
				src, err := os.ReadFile(file)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s reading %s: %v\n", colorize("Error:", colorRed, useColorOut), file, err)
					return
				}
				var cc = c
				if !cfg.EnableParseCache {
					cc = nil
				}
				scope, diags, _ := runPipeline(file, src, cc)
				f := diagFormatter{Source: src, Filename: file, Color: useColorOut}
				for _, d := range diags {
					f.Format(os.Stderr, d)
				}
				if len(diags) == 0 {
					fmt.Fprintf(os.Stdout, "%s: %d statement(s), no diagnostics\n", file, len(scope.Statements))
				}
			}

			fmt.Fprintf(os.Stdout, "watching %s (ctrl-c to stop)\n", file)
			reparse()

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != filepath.Clean(file) {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
						reparse()
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "%s watcher error: %v\n", colorize("Error:", colorRed, useColorOut), err)
				}
			}
		},
	}
	return cmd
}
