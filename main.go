package main

import "github.com/marcodamonte/concurrency/exercises/internal/cli"

// Run:
//
//	go run .                      # every exercise, fixed inputs
//	go run . run --only two-sum   # a single step
//	go run . run --detach --metrics
//	go run . list
func main() {
	cli.Execute()
}
