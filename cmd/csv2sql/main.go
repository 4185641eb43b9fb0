package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"csv2sql/config"
	"csv2sql/dialects"
	"csv2sql/ingest"
	_ "csv2sql/ingest/all"
	"csv2sql/sqlgen"
)

func getDriverName(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".tsv", ".txt":
		return "csv", nil
	case ".xlsx", ".xls":
		return "excel", nil
	case ".html", ".htm":
		return "html", nil
	}
	return "", fmt.Errorf("unsupported file type: %s", ext)
}

// convertFile runs the full pipeline: ingest the input, generate SQL for the
// configured engine, write the output file in one shot.
func convertFile(inputPath, outputPath string, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Engine is known to exist once Validate passes.
	dialect, err := dialects.Lookup(cfg.Engine)
	if err != nil {
		return err
	}

	driverName, err := getDriverName(inputPath)
	if err != nil {
		return err
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer inputFile.Close()

	table, err := ingest.ReadTable(driverName, inputFile, &ingest.Options{
		TableName:     cfg.Table,
		Delimiter:     cfg.DelimiterRune(),
		SampleSize:    cfg.SampleSize,
		SanitizeNames: cfg.SanitizeNames,
	})
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", inputPath, err)
	}
	fmt.Printf("Ingested %d rows, %d columns from %s\n", len(table.Rows), len(table.Columns), inputPath)

	sqlText, err := sqlgen.Generate(table, dialect, cfg.Database, cfg.BatchSize)
	if err != nil {
		return err
	}
	fmt.Printf("Generated %s statements for table %s\n", dialect.Name(), table.Name)

	if err := os.WriteFile(outputPath, []byte(sqlText), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Wrote %s\n", outputPath)

	return nil
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  csv2sql [options] <input_file> [output_file]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  --config <file.hcl>   load options from an HCL config file")
	fmt.Println("  --engine <name>       mysql or postgresql (default postgres)")
	fmt.Println("  --db <name>           database name used in the schema section")
	fmt.Println("  --table <name>        table name used in CREATE TABLE / INSERT INTO")
	fmt.Println("  --batch <n>           max rows per INSERT statement")
	fmt.Println("  --sample <n>          data rows sampled for type inference")
	fmt.Println("  --sanitize            rewrite header names into plain identifiers")
	fmt.Println("")
	fmt.Println("Output defaults to <input_file>.sql and is overwritten if present.")
}

func main() {
	args := os.Args[1:]

	cfg := config.DefaultConfig()
	var positional []string

	i := 0
	for i < len(args) {
		arg := args[i]
		needValue := func() (string, bool) {
			if i+1 >= len(args) {
				fmt.Printf("Error: %s requires a value\n", arg)
				return "", false
			}
			i++
			return args[i], true
		}

		switch arg {
		case "--config":
			path, ok := needValue()
			if !ok {
				os.Exit(1)
			}
			loaded, err := config.Load(path)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		case "--engine":
			v, ok := needValue()
			if !ok {
				os.Exit(1)
			}
			cfg.Engine = v
		case "--db":
			v, ok := needValue()
			if !ok {
				os.Exit(1)
			}
			cfg.Database = v
		case "--table":
			v, ok := needValue()
			if !ok {
				os.Exit(1)
			}
			cfg.Table = v
		case "--batch":
			v, ok := needValue()
			if !ok {
				os.Exit(1)
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				fmt.Printf("Error: invalid batch size %q\n", v)
				os.Exit(1)
			}
			cfg.BatchSize = n
		case "--sample":
			v, ok := needValue()
			if !ok {
				os.Exit(1)
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				fmt.Printf("Error: invalid sample size %q\n", v)
				os.Exit(1)
			}
			cfg.SampleSize = n
		case "--sanitize":
			cfg.SanitizeNames = true
		case "--help", "-h":
			usage()
			return
		default:
			positional = append(positional, arg)
		}
		i++
	}

	if len(positional) < 1 {
		usage()
		os.Exit(1)
	}

	inputPath := positional[0]
	var outputPath string
	if len(positional) >= 2 {
		outputPath = positional[1]
	} else {
		outputPath = inputPath + ".sql"
	}

	if err := convertFile(inputPath, outputPath, cfg); err != nil {
		fmt.Printf("Error converting file: %v\n", err)
		os.Exit(1)
	}
}
