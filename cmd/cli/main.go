package main

import "vien/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
