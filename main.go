// Package main is the entry point for the diamondkit CLI.
package main

import "diamondkit.dev/pkg/diamondkit/cmd"

func main() {
	cmd.Execute()
}
