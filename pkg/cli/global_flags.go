package cli

// GlobalFlags represents the Heat CLI global flags.
type GlobalFlags struct {
	Verbosity int
	Debug     bool
	Version   bool
}

// Parse parses the Heat CLI global flags, it accepts the following:
//   - `-v`, `-vv`: defines the verbosity level.
//   - `--debug` (deprecated): same as `-vv`.
//   - `--version`: displays the CLI and Heat API versions.
//
// Parsing stops at the first argument which isn't a global flag,
// the remaining arguments are returned.
func (gf *GlobalFlags) Parse(args []string) []string {
	var i int
ParseLoop:
	for argsLen := len(args); i < argsLen; i++ {
		switch args[i] {
		case "-v":
			gf.Verbosity = 1
		case "-vv", "-vvv":
			gf.Verbosity = 2
		case "--version":
			gf.Version = true
		case "--debug":
			gf.Debug = true
		default:
			break ParseLoop
		}
	}
	return args[i:]
}
