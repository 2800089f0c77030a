package cmds

import "os"

var GlobalExecutor = NewExecutor()

func init() {
	GlobalExecutor.Define("-h", Func(func() {
		GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(0)
	}).Desc("print this usage").Alias("-help", "--help"))
}

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}
