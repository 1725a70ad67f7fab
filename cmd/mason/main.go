package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/mason/pkg/emoji"
	"github.com/arthur-debert/mason/pkg/style"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", emoji.Error, style.Error(err.Error()))
		os.Exit(1)
	}
}
