package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/decaf/cmds"
	"github.com/reusee/decaf/lexing"
	"github.com/reusee/dscope"
)

var (
	queryFlag = cmds.Var[string]("-query", "evaluate a starlark expression over the tokens of each input")
	tapFlag   = cmds.Switch("-tap", "open a starlark REPL over the tokens of each input")
)

func main() {
	var files []string
	cmds.GlobalExecutor.Positional = func(arg string) error {
		files = append(files, arg)
		return nil
	}
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(files) == 0 {
		files = []string{lexing.StdinName}
	}

	var ok bool
	var err error
	dscope.New(new(Module)).Call(func(
		run Run,
	) {
		ok, err = run(context.Background(), RunArgs{
			Files:  files,
			Query:  *queryFlag,
			Tap:    *tapFlag,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		})
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}
