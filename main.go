package main

import "github.com/Tiliavir/joblog/cmd"

func main() {
	cmd.Execute()
}
