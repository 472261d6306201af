// Package main is the entry point for the wptscore CLI.
package main

import "wptscore.dev/pkg/wptscore/cmd"

func main() {
	cmd.Execute()
}
