package main

import (
	"os"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
