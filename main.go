package main

import "mytodos/cmd"

func main() {
	cmd.Execute()
}
