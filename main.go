package main

import "github.com/rail44/kata/cmd"

func main() {
	cmd.Execute()
}
