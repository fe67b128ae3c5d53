package main

import "obsidex/cmd/obsidex-cli/cmd"

func main() {
	cmd.Execute()
}
