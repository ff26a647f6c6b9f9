package main

import "github.com/cardionics/tetfield/cmd"

func main() {
	cmd.Execute()
}
