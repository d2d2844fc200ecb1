package main

import (
	"fmt"
	"os"

	"github.com/standardbeagle/bsbi/internal/config"
	"github.com/standardbeagle/bsbi/internal/indexing"
	"github.com/standardbeagle/bsbi/internal/version"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    "bsbi",
		Usage:   "Blocked sort-based indexing over a directory of text files",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file or directory to search for .bsbi.kdl/.bsbi.toml",
				Value:   ".",
			},
			&cli.Int64Flag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "Block size value (paired with --unit)",
			},
			&cli.StringFlag{
				Name:    "unit",
				Aliases: []string{"u"},
				Usage:   "Block size unit: K, M, or G",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Input directory to index",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Emit per-block memory-usage diagnostics",
			},
		},
		Action: runIndex,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bsbi: %v\n", err)
		os.Exit(1)
	}
}

func runIndex(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.Apply(config.Overrides{
		BlockSizeValue: c.Int64("size"),
		BlockSizeUnit:  c.String("unit"),
		InputDir:       c.String("dir"),
		OutputDir:      c.String("output"),
		Verbose:        c.Bool("verbose"),
		VerboseSet:     c.IsSet("verbose"),
	})

	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	outputPath, err := indexing.Run(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("index written to %s\n", outputPath)
	return nil
}
