package main

import "github.com/bz888/processtext/cmd"

func main() {
	cmd.Execute()
}
