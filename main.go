package main

import "cashlens/cmd"

func main() {
	cmd.Execute()
}
