package main

import "worksheet-docs/cmd"

func main() {
	cmd.Execute()
}
