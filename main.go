package main

import "tasklight.app/tasklight/cmd"

func main() {
	cmd.Execute()
}
