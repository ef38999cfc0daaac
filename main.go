package main

import (
	"github.com/zalepa/nbastandings/cmd"
)

func main() {
	cmd.Run()
}
