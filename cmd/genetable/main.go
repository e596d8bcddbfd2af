// Command genetable manages row and column labels of tabular biological
// datasets: storing them, resolving identifiers to positions, and
// deduplicating colliding names.
package main

import "github.com/mesh-intelligence/genetable/internal/cli"

func main() {
	cli.Execute()
}
