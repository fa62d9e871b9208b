package main

import (
	"os"

	"github.com/vippsas/layeredspan/cmd/spanctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
