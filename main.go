package main

import "github.com/erwaqarmalik/studio-sheet/cmd"

func main() {
	cmd.Execute()
}
