package main

import "github.com/dwisusanto/perf-tracker/cmd"

func main() {
	cmd.Execute()
}
