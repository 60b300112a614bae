// Command cricketai is a terminal client for the fantasy-cricket chat backend.
package main

import "github.com/diogo/cricketai/internal/commands"

func main() {
	commands.Execute()
}
