package main

import "menagerie/internal/cli"

func main() {
	cli.Execute()
}
