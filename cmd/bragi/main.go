package main

import (
	"github.com/bragi-io/bragi/cmd/bragi/cmd"
)

func main() {
	cmd.Execute()
}
