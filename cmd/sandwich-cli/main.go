// Command sandwich-cli searches Pokémon Scarlet/Violet sandwich recipes
// via Monte Carlo tree search for ones matching a requested set of powers
// and types.
package main

import (
	"github.com/pokemon-sandwich/suggester/internal/sandwichcli/commands"
)

var (
	version   = "0.1.0"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	commands.SetVersionInfo(version, buildTime, gitCommit)
	commands.Execute()
}
