package main

import (
	"fmt"
	"os"

	"github.com/kakusei/vncards/cmd"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
