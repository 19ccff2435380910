package main

import "github.com/mydehq/tunetidy/internal/cli"

func main() {
	cli.Execute()
}
