package main

import (
	"fmt"
	"os"

	"github.com/forthekill/GenSec4/cmd/gensec"
	"github.com/forthekill/GenSec4/pkg/style"
)

func main() {
	rootCmd := gensec.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
