package main

import "github.com/Tiliavir/timebox-tracker/cmd"

func main() {
	cmd.Execute()
}
