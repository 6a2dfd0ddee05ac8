package main

import (
	"os"

	"ccwc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
