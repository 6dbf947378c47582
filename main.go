// Package main is the entry point for the verdict CLI.
package main

import "gooze.dev/pkg/verdict/cmd"

func main() {
	cmd.Execute()
}
