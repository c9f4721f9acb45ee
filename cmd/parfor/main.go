// Package main provides the parfor CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("parfor %s\n", version)
		return
	}

	fmt.Println("parfor - Shape-Adaptive Parallel Iteration for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See the examples/ directory for runnable demos.")
}
