package main

import "impactrack/internal/cli"

func main() {
	cli.Execute()
}
