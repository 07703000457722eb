// cmd/rematch/main.go
package main

import (
	"os"

	"github.com/bethropolis/rematch/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.Execute())
}
