package main

import "github.com/papapumpkin/reveal/cmd"

func main() {
	cmd.Execute()
}
