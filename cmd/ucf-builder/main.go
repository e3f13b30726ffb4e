package main

import "github.com/tim-tx/cello-utils/internal/cli"

func main() {
	cli.Execute()
}
