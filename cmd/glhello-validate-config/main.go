package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fosdem/glhello/lib/config"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatalf("Usage: %s [config file]", os.Args[0])
	}
	// without a file this checks and prints the built-in defaults
	filename := ""
	if len(os.Args) == 2 {
		filename = os.Args[1]
	}
	cfg, err := config.Parse(filename)
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	fmt.Print("Config valid!\n\n")

	fmt.Print(cfg)
}
