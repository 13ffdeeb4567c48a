package main

import "genie-relay/backend/cmd/geniectl/cmd"

func main() {
	cmd.Execute()
}
