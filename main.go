package main

import "github.com/mpapenbr/fmtune-formatter/cmd"

func main() {
	cmd.Execute()
}
