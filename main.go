package main

import (
	"os"

	"github.com/solosec-io/solosec/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
