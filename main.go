package main

import "github.com/alpaso-live/alpaso-cli/cli/cmd"

func main() {
	cmd.Execute()
}
