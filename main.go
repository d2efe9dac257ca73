// Package main is the entry point for the sysupdate CLI application.
//
// sysupdate runs the update commands of every package manager installed on
// a personal machine (pacman, nix, pip, gem, npm, opam, go, rustup) one
// after another and reports whether all of them succeeded.
package main

import "github.com/ajxudir/sysupdate/cmd"

// main delegates all command parsing and execution to the cmd package.
func main() {
	cmd.Execute()
}
