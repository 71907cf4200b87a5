package main

import (
	"log"

	"github.com/stashtui/stashtui/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
