package cmds

// GlobalExecutor holds the process-wide command set. Packages register
// their flags against it from init functions; main drives it once with
// os.Args.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}
