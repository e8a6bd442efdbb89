package main

import "github.com/FluidXR/tabletswitch/cmd"

func main() {
	cmd.Execute()
}
