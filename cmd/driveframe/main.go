// driveframe - terminal slideshow for cloud and local media folders.
package main

import (
	"os"

	"github.com/driveframe/driveframe/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
