package main

import "github.com/brogergvhs/watchgrid/cmd"

func main() {
	cmd.Execute()
}
