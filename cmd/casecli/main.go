// casecli converts words to camel, kebab, dot or snake case from the command line.
//
//	casecli -s snake "JSONResponse" "hello world"
//	echo "some title" | casecli --style camel
//	casecli --all userId
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"CommentCase/core"

	"github.com/jessevdk/go-flags"
)

// maxLineBytes bounds a single stdin line.
const maxLineBytes = 1 << 20

type options struct {
	Style string `short:"s" long:"style" description:"target case: camel|kebab|dot|snake" default:"kebab"`
	All   bool   `short:"a" long:"all" description:"print every style, tab separated"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] [WORDS...]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	styles := core.Styles()
	if !opts.All {
		style, err := core.ParseStyle(opts.Style)
		if err != nil {
			fmt.Fprintf(stderr, "%v: %q\n", err, opts.Style)
			return 2
		}
		styles = []core.Style{style}
	}

	emit := func(s string) {
		out := make([]string, 0, len(styles))
		for _, st := range styles {
			out = append(out, core.ToCase(s, st))
		}
		fmt.Fprintln(stdout, strings.Join(out, "\t"))
	}

	if len(rest) > 0 {
		for _, s := range rest {
			emit(s)
		}
		return 0
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		emit(sc.Text())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
