package main

import "github.com/agiangrant/ctdinput/cmd/ctdinput/commands"

func main() {
	commands.Execute()
}
