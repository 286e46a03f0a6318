package main

import (
	"github.com/typefight/typefighter-go/internal/cli"
)

func main() {
	cli.Execute()
}
