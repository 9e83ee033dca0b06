package main

import (
	"log"

	"github.com/retrocompute/agcsim/cmd/agcsim/cmd"
)

func main() {
	log.SetFlags(log.Lmsgprefix | log.Lmicroseconds)
	log.SetPrefix("agcsim: ")
	cmd.Execute()
}
