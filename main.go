package main

import "github.com/they4kman/goslide/cmd"

func main() {
	cmd.Execute()
}
