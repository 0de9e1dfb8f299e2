package main

import "github.com/they4kman/gomatch/cmd"

func main() {
	cmd.Execute()
}
