// projexts is a command-line shortcut manager for project commands.
package main

import (
	"os"

	"github.com/projexts/projexts/internal/cmd"
)

// main delegates all command parsing and execution to cmd.Execute()
// and exits with its return code.
func main() {
	os.Exit(cmd.Execute())
}
