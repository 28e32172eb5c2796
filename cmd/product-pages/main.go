// Package main boots the product pages server.
package main

import (
	"os"

	"github.com/fairyhunter13/product-pages/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
