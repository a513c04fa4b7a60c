package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledgerbook-dev/ledgerbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		var xe *commands.ExitError
		if errors.As(err, &xe) {
			fmt.Println(xe.Message)
			os.Exit(xe.Code)
		}
		// Anything cobra rejects before run() is a usage problem.
		fmt.Println(err)
		os.Exit(commands.ExitUsage)
	}
}
