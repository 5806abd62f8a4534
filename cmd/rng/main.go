package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/josh-t/OpenRange/rangelist"
)

// main starts an interactive shell operating on a working range list.
// Commands mutate or inspect the list; the resulting spec string is
// printed after every mutation.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to the OpenRange shell")
	//
	scanner, err := newCmdScanner()
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	repl, err := readline.New("rng> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	args := make([]interface{}, 0, flag.NArg())
	for _, a := range flag.Args() {
		args = append(args, a)
	}
	list, err := rangelist.New(args...)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	shell := &shell{scanner: scanner, repl: repl, list: list}
	tracer().Infof("Quit with <ctrl>D")
	shell.loop()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// shell holds the interactive state: the scanner, the line editor and
// the working range list.
type shell struct {
	scanner *cmdScanner
	repl    *readline.Instance
	list    *rangelist.RangeList
}

func (sh *shell) loop() {
	for {
		line, err := sh.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := sh.execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// execute runs a single command line.
func (sh *shell) execute(line string) (bool, error) {
	tokens, err := sh.scanner.tokens(line)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 || tokens[0].kind != tokKeyword {
		pterm.Error.Println("commands start with a keyword; try 'help'")
		return false, nil
	}
	cmd := tokens[0].lexeme
	arg := ""
	if len(tokens) > 1 {
		arg = tokens[1].lexeme
	}
	switch cmd {
	case "quit":
		return true, nil
	case "help":
		sh.printHelp()
	case "add":
		if err := sh.list.Add(arg); err != nil {
			return false, err
		}
		pterm.Info.Println(sh.list.String())
	case "remove":
		if err := sh.list.Remove(arg); err != nil {
			return false, err
		}
		pterm.Info.Println(sh.list.String())
	case "compact":
		sh.list.Compact()
		pterm.Info.Println(sh.list.String())
	case "list":
		sh.printSegments()
	case "items":
		items := sh.list.Values()
		strs := make([]string, len(items))
		for i, item := range items {
			strs[i] = pterm.Sprintf("%v", item)
		}
		pterm.Info.Println(strings.Join(strs, " "))
	case "clear":
		fresh, _ := rangelist.New()
		sh.list = fresh
		pterm.Info.Println("(empty)")
	case "hash":
		h, err := sh.list.Hash()
		if err != nil {
			return false, err
		}
		pterm.Info.Println(h)
	}
	return false, nil
}

// printSegments renders the segment list as a tree.
func (sh *shell) printSegments() {
	segs := sh.list.Segments()
	if len(segs) == 0 {
		pterm.Info.Println("(empty)")
		return
	}
	ll := pterm.LeveledList{{Level: 0, Text: sh.list.String()}}
	for _, seg := range segs {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: seg.String()})
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func (sh *shell) printHelp() {
	pterm.Info.Println(strings.Join([]string{
		"add <spec>      append ranges, e.g. add 1-10:2,15",
		"remove <spec>   exclude numbers from the list",
		"compact         merge into minimal stepped segments",
		"list            show the segments",
		"items           show every item",
		"clear           start over",
		"hash            fingerprint of the current list",
		"quit            leave the shell",
	}, "\n"))
}
