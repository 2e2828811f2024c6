package main

import "github.com/HazyCorp/statscalc/cmd/statscalc/cmd"

func main() {
	cmd.Execute()
}
