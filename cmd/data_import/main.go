package main

import "parthunter/internal/cli"

func main() {
	cli.Execute()
}
