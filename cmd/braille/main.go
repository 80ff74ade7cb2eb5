// Command braille transcribes between Spanish text and six-dot Braille and
// serves the transcoder over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/braille/internal/logging"
)

// Set by the linker: -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
)

func main() {
	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
