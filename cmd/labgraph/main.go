// Command labgraph loads a graph description file and prints renderings,
// traversals, weights, shortest paths and spanning trees of the graph it describes.
//
// Usage:
//
//	labgraph show graph.yaml --extended
//	labgraph bfs graph.yaml --source B
//	labgraph dfs graph.yaml
//	labgraph components graph.yaml
//	labgraph cycle graph.yaml
//	labgraph weight graph.yaml --from B --to D
//	labgraph path graph.yaml --from A --to H
//	labgraph mst graph.yaml --method prim --root A
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
// Command output goes to stdout; logs and errors go to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.logger.Error("command failed", "err", err)
		return 1
	}

	return 0
}
