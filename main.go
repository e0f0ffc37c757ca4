package main

import "ctws/internal/cli"

func main() {
	cli.Execute()
}
