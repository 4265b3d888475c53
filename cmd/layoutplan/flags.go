package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line options for one invocation.
type cliFlags struct {
	input   string // markdown file, or "-" for stdin
	output  string // blueprint destination, empty = stdout
	config  string // config file name or path
	brand   string // brand profile YAML path
	topic   string // declared topic title
	pillar  bool   // topic is a core pillar topic
	intent  string // primary search intent
	pretty  bool   // indent the JSON output
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args (without the program name) into cliFlags.
// Exactly one positional input argument is expected unless --version is set.
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("layoutplan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&flags.output, "output", "o", "", "blueprint output file (default stdout)")
	fs.StringVarP(&flags.config, "config", "c", "", "config file name or path")
	fs.StringVar(&flags.brand, "brand", "", "brand profile YAML path")
	fs.StringVar(&flags.topic, "topic", "", "declared topic title")
	fs.BoolVar(&flags.pillar, "pillar", false, "mark the topic as a core pillar topic")
	fs.StringVar(&flags.intent, "intent", "", "primary search intent phrase")
	fs.BoolVar(&flags.pretty, "pretty", false, "indent the JSON blueprint")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage(os.Stdout)
			os.Exit(ExitSuccess)
		}
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if flags.version {
		return flags, nil
	}

	positional := fs.Args()
	switch len(positional) {
	case 0:
		return nil, ErrNoInput
	case 1:
		flags.input = positional[0]
	default:
		return nil, fmt.Errorf("%w: got %d arguments", ErrTooManyInputs, len(positional))
	}

	return flags, nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: layoutplan <input.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a layout blueprint from a markdown document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or \"-\" to read stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>   Blueprint JSON file (default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "      --brand <path>    Brand profile YAML (default: built-in profile)")
	fmt.Fprintln(w, "      --pretty          Indent the JSON blueprint")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document hints:")
	fmt.Fprintln(w, "      --topic <s>       Declared topic title")
	fmt.Fprintln(w, "      --pillar          Mark the topic as a core pillar topic")
	fmt.Fprintln(w, "      --intent <s>      Primary search intent phrase")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet           Suppress progress output")
	fmt.Fprintln(w, "  -v, --verbose         Verbose progress output")
	fmt.Fprintln(w, "      --version         Print version and exit")
}
