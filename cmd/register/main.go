// Command register runs the Divine Encounter signup in a terminal: it asks for
// the form fields, registers with the backend, takes payment and shows the
// success page.
package main

import (
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
