package main

import "empanada-tracker/cmd"

func main() {
	cmd.Execute()
}
