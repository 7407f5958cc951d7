package cmds

func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	return &value
}

func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Describe sets the usage text of a defined command.
func Describe(name string, desc string) {
	if cmd, ok := GlobalExecutor.commands[name]; ok {
		cmd.Desc(desc)
	}
}
