package main

import "github.com/isostatics/isoframe/cmd"

func main() {
	cmd.Execute()
}
