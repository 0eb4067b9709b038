// Package cliutil holds small helpers shared by the job-launch commands.
package cliutil

// ArgsForHelp reports whether args only ask for usage:
// no arguments at all, or a single -h / --help.
func ArgsForHelp(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if len(args) == 1 {
		return args[0] == "-h" || args[0] == "--help"
	}
	return false
}
