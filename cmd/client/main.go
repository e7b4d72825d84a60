package main

import (
	"resumeforge/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
