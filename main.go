package main

import "github.com/clipkeep/clipkeep/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
