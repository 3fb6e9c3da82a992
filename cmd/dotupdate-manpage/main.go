package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/leighmacdonald/dotupdate/internal/cli"
	"github.com/leighmacdonald/dotupdate/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTUPDATE",
		Section: "1",
		Source:  "dotupdate " + version.Version,
		Manual:  "dotupdate manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
