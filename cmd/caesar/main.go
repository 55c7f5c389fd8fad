package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	flags, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if err := loadDotEnv(flags.envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", faultMessage(err))
		os.Exit(1)
	}
}

// cliFlags holds the parsed command line. Empty strings leave the
// configuration file value in place.
type cliFlags struct {
	configPath string
	envFile    string
	mode       string
	color      string
	accessible bool
	logLevel   string
	logFormat  string
}

func parseFlags(args []string, output io.Writer) (cliFlags, error) {
	fs := flag.NewFlagSet("caesar", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: caesar [flags]\n\nEncrypt and decrypt messages with the Caesar cipher.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var f cliFlags
	fs.StringVar(&f.configPath, "config", "", "path to configuration file (default: caesar.yaml if present)")
	fs.StringVar(&f.envFile, "env", ".env", "path to .env file (ignored if missing)")
	fs.StringVar(&f.mode, "mode", "", "frontend: auto, line or form")
	fs.StringVar(&f.color, "color", "", "colored output: auto, always or never")
	fs.BoolVar(&f.accessible, "accessible", false, "use line-based form prompts for screen readers")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected argument %q", fs.Arg(0))
		fmt.Fprintf(output, "error: %v\n", err)
		fs.Usage()
		return cliFlags{}, err
	}
	return f, nil
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// faultMessage is the text shown when the session ends on an error.
func faultMessage(err error) string {
	return fmt.Sprintf("An error has occurred: %v. The program has been terminated.", err)
}
