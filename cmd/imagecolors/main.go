// imagecolors - background and accent colour extraction
//
// imagecolors analyses an image and picks a background colour plus up to
// three accent colours that contrast with it.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/imagecolors/internal/cli"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
