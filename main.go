package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mcncl/filefmt/internal/bulk"
	"github.com/mcncl/filefmt/internal/config"
	"github.com/mcncl/filefmt/internal/converter"
	"github.com/mcncl/filefmt/internal/dialect"
	"github.com/mcncl/filefmt/internal/errors"
)

// Version information
const Version = "0.1.0"

// CLI defines the command-line interface
var CLI struct {
	CsvToJson CsvToJsonCmd `cmd:"" name:"csv-to-json" help:"Convert CSV files to JSON with type inference."`
	JsonToCsv JsonToCsvCmd `cmd:"" name:"json-to-csv" help:"Convert JSON object/array files to CSV."`

	Config  string           `help:"Path to a filefmt config file. Discovered automatically when omitted." type:"path"`
	Debug   bool             `help:"Enable debug logging." short:"d"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`
}

// Context holds the runtime context passed to subcommands
type Context struct {
	Debug  bool
	Config *config.Config
}

// convertFlags are the options shared by both conversion directions.
// Exactly one input (--file or --pattern) and one output (--output-file
// or --output-dir) must be given; patterns pair with directories.
type convertFlags struct {
	File       string `help:"Single input file path." xor:"input" required:"" type:"path"`
	Pattern    string `help:"Glob pattern for bulk conversion (e.g. 'data/*.csv')." xor:"input" required:""`
	OutputFile string `help:"Output file path (single file conversion)." xor:"output" required:"" type:"path"`
	OutputDir  string `help:"Output directory (bulk conversion)." xor:"output" required:"" type:"path"`
	Delimiter  string `help:"Field delimiter character." default:","`
	Escape     string `help:"Escape character for literal delimiters and quotes."`
}

// CsvToJsonCmd converts delimited text into a JSON array of objects.
type CsvToJsonCmd struct {
	convertFlags
}

func (c *CsvToJsonCmd) Run(ctx *Context) error {
	return runConversion(ctx, c.convertFlags, ".json", converter.CsvToJSON)
}

// JsonToCsvCmd converts a JSON object or array of objects into CSV.
type JsonToCsvCmd struct {
	convertFlags
}

func (c *JsonToCsvCmd) Run(ctx *Context) error {
	return runConversion(ctx, c.convertFlags, ".csv", converter.JSONToCsv)
}

type convertFn func(inputPath, outputPath string, d dialect.Dialect, cfg *config.Config) error

// runConversion resolves the dialect from flags and config, then runs
// either the single-file or the bulk path.
func runConversion(ctx *Context, f convertFlags, outputExt string, fn convertFn) error {
	cfg := ctx.Config

	// Flags override config values; the default comma only stands in when
	// the config does not say otherwise.
	delimiter := f.Delimiter
	if delimiter == "," && cfg.Delimiter != "" {
		delimiter = cfg.Delimiter
	}
	escape := f.Escape
	if escape == "" {
		escape = cfg.Escape
	}

	d, err := dialect.New(delimiter, escape)
	if err != nil {
		return err
	}

	convert := func(in, out string) error { return fn(in, out, d, cfg) }

	if f.Pattern != "" {
		if f.OutputDir == "" {
			return errors.NewInputError("--pattern requires --output-dir", nil)
		}
		debugf(ctx, "bulk conversion: pattern=%s output-dir=%s", f.Pattern, f.OutputDir)
		res, err := bulk.Run(f.Pattern, f.OutputDir, outputExt, convert, os.Stderr)
		if err != nil {
			return err
		}
		if res.Failed > 0 {
			fmt.Printf("Converted %d files, %d failed\n", res.Converted, res.Failed)
		} else {
			fmt.Printf("Converted %d files\n", res.Converted)
		}
		return nil
	}

	if f.OutputFile == "" {
		return errors.NewInputError("--file requires --output-file", nil)
	}
	debugf(ctx, "single conversion: %s -> %s", f.File, f.OutputFile)
	if err := convert(f.File, f.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Successfully converted %s to %s\n", f.File, f.OutputFile)
	return nil
}

func debugf(ctx *Context, format string, args ...interface{}) {
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
	}
}

// loadConfig resolves the effective configuration: an explicit --config
// path, a discovered config file, or the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.LoadConfig(path)
}

func main() {
	parser := kong.Must(&CLI,
		kong.Name("filefmt"),
		kong.Description("Convert tabular data between CSV and JSON."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(errors.ExitInput)
	}

	cfg, err := loadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(errors.ExitCode(err))
	}

	ctx := &Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg}
	if err := kctx.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(errors.ExitCode(err))
	}
}
