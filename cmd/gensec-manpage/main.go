package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/forthekill/GenSec4/cmd/gensec"
	"github.com/forthekill/GenSec4/internal/version"
)

func main() {
	rootCmd := gensec.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GENSEC",
		Section: "1",
		Source:  "gensec " + version.Version,
		Manual:  "gensec manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
