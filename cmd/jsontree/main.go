// Command jsontree checks, re-emits and summarises JSON documents using the
// jsontree parser.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, "jsontree:", err)
		}
		os.Exit(1)
	}
}
