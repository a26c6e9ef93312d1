package main

import "github.com/rpgo/wealth-planner/cmd"

func main() {
	cmd.Execute()
}
