package main

import (
	"fmt"
	"os"

	"github.com/leighmacdonald/dotupdate/internal/cli"
	"github.com/leighmacdonald/dotupdate/pkg/ui/output/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(cli.ExitCode(err))
	}
}
