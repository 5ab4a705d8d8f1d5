package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "execute a script of tree operations",
	ArgsUsage: `[<operation>...]`,
	Description: "Each argument is one operation, e.g. 'insert 10' or 'inorder'.\n" +
		"Without arguments the operations are read from --file or stdin, one per line.",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:    "keys",
			Usage:   "keys inserted before the script runs",
			EnvVars: []string{"SPLAY_KEYS"},
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "read the script from this file",
			EnvVars: []string{"SPLAY_SCRIPT"},
		},
	},
	Action: runScript,
}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "insert, remove and undo on a small tree, printing every step",
	Action: runDemo,
}

func runScript(cctx *cli.Context) error {
	s := newSession(os.Stdout, slog.Default())
	for _, k := range cctx.IntSlice("keys") {
		s.tree.Insert(k)
	}
	if cctx.Args().Present() {
		return s.runScript(strings.NewReader(strings.Join(cctx.Args().Slice(), "\n")))
	}
	if p := cctx.String("file"); p != "" {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		return s.runScript(f)
	}
	return s.runScript(os.Stdin)
}

const demoScript = `
insert 10 20 5 30 40 50
print
inorder
preorder
postorder
stats
remove 10
inorder
undo
inorder
insert 60
undo
contains 60
check
`

func runDemo(cctx *cli.Context) error {
	return newSession(os.Stdout, slog.Default()).runScript(strings.NewReader(demoScript))
}
