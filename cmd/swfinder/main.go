package main

import "github.com/swlab-dev/swfinder/pkg/cli"

func main() {
	cli.Execute()
}
