package main

import (
	"log"

	"github.com/Ember-Development/bomber-app-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
