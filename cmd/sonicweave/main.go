package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/config"
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/repl"
	"github.com/lyraproj/sonicweave/scl"
	"github.com/lyraproj/sonicweave/weave"
	"github.com/peterh/liner"
)

const helpText = `Console commands:
  :scl     Print the current scale in Scala format
  :help    Print this text
  :quit    Exit the console
`

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// report prints an error from evaluating source, prefixed with its kind
func report(stderr io.Writer, err error) {
	fmt.Fprintln(stderr, red(dsl.KindOf(err).String()+`: `+err.Error()))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(`sonicweave`, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String(`config`, config.DefaultPath(), `path to the configuration file`)
	outPath := flags.String(`o`, ``, `write the Scala file to this path instead of stdout`)
	showVersion := flags.Bool(`version`, false, `print the version and exit`)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sonicweave [flags] [file]\n\nWithout a file, an interactive console is started.\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, dsl.Banner())
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, red(err.Error()))
		return 1
	}
	logger := dsl.NewLogger(stdout, stderr, cfg.Level())

	switch flags.NArg() {
	case 0:
		return console(cfg, logger, stdout, stderr)
	case 1:
		return compile(flags.Arg(0), *outPath, cfg, logger, stdout, stderr)
	default:
		flags.Usage()
		return 2
	}
}

func compile(file, outPath string, cfg *config.Config, logger dsl.Logger, stdout, stderr io.Writer) int {
	source, err := ioutil.ReadFile(file)
	if err != nil {
		logger.LogIssue(dsl.Error(dsl.IOError, nil, issue.H{`message`: err.Error()}))
		return 1
	}
	doc, err := weave.Compile(file, string(source), cfg.Title, logger)
	if err != nil {
		report(stderr, err)
		return 1
	}
	if outPath == `` {
		io.WriteString(stdout, doc)
		return 0
	}
	if err = ioutil.WriteFile(outPath, []byte(doc), 0644); err != nil {
		logger.LogIssue(dsl.Error(dsl.IOError, nil, issue.H{`message`: err.Error()}))
		return 1
	}
	dsl.Info(logger, `wrote %s`, outPath)
	return 0
}

func console(cfg *config.Config, logger dsl.Logger, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "%s\nCtrl+D exits. Type :help for commands.\n", dsl.Banner())

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		} else {
			dsl.Warning(logger, `unable to write history to %s: %s`, histPath, err)
		}
	}()

	d := weave.NewDriver(logger)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D
			fmt.Fprintln(stdout)
			return 0
		}
		if strings.TrimSpace(line) == `` {
			continue
		}
		ln.AppendHistory(line)

		if cmd := strings.TrimSpace(line); strings.HasPrefix(cmd, `:`) {
			if !command(cmd, d, cfg, stdout, stderr) {
				return 0
			}
			continue
		}

		v, err := d.EvaluateBlock(line)
		if err != nil {
			report(stderr, err)
			continue
		}
		if v != nil {
			fmt.Fprintln(stdout, v.String())
		}
	}
}

// command executes a console command and returns false when the console should exit
func command(cmd string, d *repl.Driver, cfg *config.Config, stdout, stderr io.Writer) bool {
	switch strings.ToLower(cmd) {
	case `:quit`, `:q`:
		return false
	case `:scl`:
		title := cfg.Title
		if title == `` {
			title = scl.UntitledTuning
		}
		doc, err := scl.ExportWithTitle(d.Session(), title)
		if err != nil {
			fmt.Fprintln(stderr, red(err.Error()))
		} else {
			io.WriteString(stdout, doc)
		}
	case `:help`:
		io.WriteString(stdout, helpText)
		fmt.Fprintf(stdout, "\nFunctions:\n  %s\n", strings.Join(dsl.FunctionNames(), `, `))
	default:
		fmt.Fprintf(stderr, "unknown command %s. Type :help for commands.\n", cmd)
	}
	return true
}
