package main

import "github.com/asset-tracker/internal/cli"

func main() {
	cli.Execute()
}
