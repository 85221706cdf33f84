package cli

var (
	RunWithWriter = run
	OptionsOf     = optionsOf
)
