package main

import (
	"fmt"
	"os"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "introscore:", err)
		os.Exit(1)
	}
}
