// Public domain.

package main

import "github.com/necam-obs/ingest/internal/ingestprog"

func main() {
	ingestprog.Main()
}
