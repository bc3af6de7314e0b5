// Package main provides the olm command: a terminal manager for a small
// collection of titled links, most of them .onion addresses.
//
// Usage:
//
//	olm                     open the interactive list
//	olm add <title> <url>   add a link
//	olm copy [title]        copy a URL to the clipboard
//
// See --help for all available commands.
package main

func main() {
	Execute()
}
