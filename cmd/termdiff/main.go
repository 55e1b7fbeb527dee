package main

import (
	"os"
)

func main() {
	defer func() {
		handleCrash(recover())
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
