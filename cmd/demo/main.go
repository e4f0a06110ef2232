// The demo runner: an index of every pattern and lesson walkthrough in the
// repository, and a way to run them one at a time or all in order. Demos
// take no input and always succeed; this binary only chooses which narration
// reaches stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"patterns-lab/catalog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	list := flag.Bool("list", false, "print the demo index and exit")
	name := flag.String("run", "", "run one demo by name")
	all := flag.Bool("all", false, "run every demo in index order")
	flag.Parse()

	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	out := os.Stdout
	switch {
	case *list:
		printIndex(out)
		return nil

	case *all:
		for _, entry := range catalog.All() {
			printHeader(out, config, entry)
			entry.Run(out)
			fmt.Fprintln(out)
		}
		return nil

	case *name != "":
		entry, err := catalog.Find(*name)
		if err != nil {
			return fmt.Errorf("%w\nvalid names: %s", err, strings.Join(catalog.Names(), ", "))
		}
		printHeader(out, config, entry)
		entry.Run(out)
		return nil

	default:
		// no flag: show the index, the most useful no-argument behavior
		fmt.Fprintln(out, "usage: demo -list | -run <name> | -all")
		fmt.Fprintln(out)
		printIndex(out)
		return nil
	}
}

// printIndex renders the catalogue as an aligned table, one row per demo.
func printIndex(out io.Writer) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Family", "What it shows"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range catalog.All() {
		table.Append([]string{entry.Name, string(entry.Family), entry.Blurb})
	}
	table.Render()
}

// printHeader sets one demo apart from the next when running several. Only
// the header is ever colored.
func printHeader(out io.Writer, config Config, entry catalog.Entry) {
	header := fmt.Sprintf("  ====== %s (%s) ======", entry.Name, entry.Family)
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(out, header)
}
