package main

import (
	"context"
	"os"

	"image-compare/cmd"
)

func main() {
	err := cmd.Cmd.Run(context.Background(), os.Args)
	if err != nil {
		os.Exit(1)
	}
}
