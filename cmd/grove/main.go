package main

import "github.com/grovelang/grove/pkg/cli"

func main() {
	cli.Run()
}
