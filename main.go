package main

import (
	"log"

	"github.com/bedathon/roommate-matching/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
