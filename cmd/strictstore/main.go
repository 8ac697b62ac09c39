/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command strictstore inspects and edits the storages described by a configuration file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/suparena/strictstore"
	_ "github.com/suparena/strictstore/datastore/bolt"
	_ "github.com/suparena/strictstore/datastore/ddb"
	_ "github.com/suparena/strictstore/datastore/sqlite"
	"github.com/suparena/strictstore/observability"
)

const usage = `usage: strictstore [flags] <command> [args]

commands:
  list              print every key and its value
  get KEY           print the value of KEY
  set KEY JSON      write the JSON value to KEY (null resets it)
  reset KEY         reset KEY to its default
  reset-all         reset every key to its default

flags:
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("strictstore failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("strictstore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "strictstore.yaml", "Path to the configuration file")
	envFile := fs.String("env", "", "Optional dotenv file loaded before the configuration")
	storeName := fs.String("store", "", "Store to operate on (optional when only one is configured)")
	verbose := fs.Bool("verbose", false, "Log storage events")
	versionFlag := fs.Bool("version", false, "Show version information")
	vFlag := fs.Bool("v", false, "Show version information (short)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *versionFlag || *vFlag {
		info := strictstore.GetVersionInfo()
		fmt.Fprintf(stdout, "StrictStore version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := strictstore.LoadConfig(*configPath, envFiles...)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	name := *storeName
	if name == "" {
		names := cfg.Names()
		if len(names) != 1 {
			return fmt.Errorf("-store is required, configured stores: %s", strings.Join(names, ", "))
		}
		name = names[0]
	}

	var opts []strictstore.Option
	if *verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, strictstore.WithObserver(observability.NewSlogObserver(logger)))
	}

	s, err := cfg.Build(name, opts...)
	if err != nil {
		return err
	}
	if err := s.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize store %q: %w", name, err)
	}

	cmdErr := execute(ctx, s, fs.Args(), stdout)
	if err := s.Dispose(strictstore.CloseDriver); err != nil && cmdErr == nil {
		return err
	}
	return cmdErr
}

func execute(ctx context.Context, s *strictstore.Storage, args []string, stdout io.Writer) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		for _, key := range s.Defaults().Keys() {
			value, err := s.GetItem(key)
			if err != nil {
				return err
			}
			if err := printValue(stdout, key+"=", value); err != nil {
				return err
			}
		}
		return nil

	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("usage: get KEY")
		}
		value, err := s.GetItem(rest[0])
		if err != nil {
			return err
		}
		return printValue(stdout, "", value)

	case "set":
		if len(rest) != 2 {
			return fmt.Errorf("usage: set KEY JSON")
		}
		var value any
		if err := json.Unmarshal([]byte(rest[1]), &value); err != nil {
			return fmt.Errorf("invalid JSON value: %w", err)
		}
		if err := s.SetItem(ctx, rest[0], value); err != nil {
			return err
		}
		value, err := s.GetItem(rest[0])
		if err != nil {
			return err
		}
		return printValue(stdout, "", value)

	case "reset":
		if len(rest) != 1 {
			return fmt.Errorf("usage: reset KEY")
		}
		value, err := s.ResetItem(ctx, rest[0])
		if err != nil {
			return err
		}
		return printValue(stdout, "", value)

	case "reset-all":
		if err := s.ResetAll(ctx); err != nil {
			return err
		}
		n, err := s.Len()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "reset %d keys\n", n)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printValue(w io.Writer, prefix string, value any) error {
	if strictstore.IsUndefined(value) {
		_, err := fmt.Fprintf(w, "%sundefined\n", prefix)
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s%s\n", prefix, data)
	return err
}
