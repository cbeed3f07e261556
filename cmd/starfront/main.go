package main

import "github.com/andrescamacho/starfront-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
