package main

import "github.com/forPelevin/takenotes/internal/cli"

func main() {
	cli.Main()
}
