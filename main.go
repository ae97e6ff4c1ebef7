package main

import (
	"os"

	"github.com/rodrigofbmattos/gerar-cronograma/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
