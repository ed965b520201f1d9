package main

import "rocket/internal/cli"

func main() {
	cli.Execute()
}
