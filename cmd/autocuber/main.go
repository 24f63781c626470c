// Autocuber - animate Rubik's cube algorithms in the terminal.
package main

import (
	"github.com/thirdsgames/autocuber/internal/cli"
)

func main() {
	cli.Execute()
}
