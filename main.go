package main

import "github.com/noesis-atp/noesis/cmd"

func main() {
	cmd.Execute()
}
