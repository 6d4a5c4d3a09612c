package main

import (
	"fmt"
	"os"

	"github.com/yungbote/claimline-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "claimline: %v\n", err)
		os.Exit(1)
	}
}
