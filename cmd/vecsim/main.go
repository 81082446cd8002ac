package main

import "vecsim/internal/cli"

func main() {
	cli.Execute()
}
