package main

import (
	"os"

	"github.com/thenoetrevino/crewdesk/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
