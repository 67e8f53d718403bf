package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd.AddCommand(convertCmd, clearanceCmd, templateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
