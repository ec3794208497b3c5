package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	codepage string
)

var rootCmd = &cobra.Command{
	Use:   "dumpinfo",
	Short: "Inspect z/OS dump datasets",
	Long: `dumpinfo reads the header block of a z/OS dump dataset copied to a file
and reports what kind of dump it is, which system took it and when, and which
address spaces were involved. It works on the raw records, so no host
connection or IPCS session is needed.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&codepage, "codepage", "1047", "EBCDIC code page for text fields (037, 1047, 1140)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// selectCodePage maps the --codepage flag to a character map.
func selectCodePage() (*charmap.Charmap, error) {
	switch codepage {
	case "037":
		return charmap.CodePage037, nil
	case "1047":
		return charmap.CodePage1047, nil
	case "1140":
		return charmap.CodePage1140, nil
	default:
		return nil, fmt.Errorf("unsupported code page %q (use 037, 1047, or 1140)", codepage)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
