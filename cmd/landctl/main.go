// Command landctl inspects a land dataset and classifies points offline,
// using the same loader and validation rules as the API.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
