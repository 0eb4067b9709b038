package main

import "github.com/Justype/subprep/cmd"

func main() {
	cmd.Execute()
}
