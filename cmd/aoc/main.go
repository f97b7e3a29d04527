package main

import "github.com/keithbhunter/AdventOfCode-2021/internal/cli"

func main() {
	cli.Execute()
}
