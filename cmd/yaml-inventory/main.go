package main

import "yaml-inventory/internal/cli"

func main() {
	cli.Execute()
}
