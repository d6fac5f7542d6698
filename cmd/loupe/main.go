package main

import "github.com/loupe-dev/loupe/internal/cli"

func main() {
	cli.Execute()
}
