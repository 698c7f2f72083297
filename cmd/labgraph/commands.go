package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labgraph/bfs"
	"github.com/katalvlaran/labgraph/core"
	"github.com/katalvlaran/labgraph/dfs"
	"github.com/katalvlaran/labgraph/dijkstra"
	"github.com/katalvlaran/labgraph/internal/loader"
	"github.com/katalvlaran/labgraph/prim_kruskal"
)

// app carries the writers, the logger and the flag values shared by all commands.
type app struct {
	out    io.Writer
	level  *slog.LevelVar
	logger *slog.Logger

	verbose  bool
	extended bool
	source   string
	maxDepth int
	start    string
	from     string
	to       string
	method   string
	root     string
}

func newApp(stdout, stderr io.Writer) *app {
	level := new(slog.LevelVar)
	return &app{
		out:    stdout,
		level:  level,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
}

// rootCmd assembles the command tree.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "labgraph",
		Short: "Inspect undirected labeled graphs described in YAML",
		Long: `Load a graph description file and print its renderings, traversals,
edge weights, shortest paths and minimum spanning trees.

Description format:
  vertices: [A, B, C]
  edges:
    - {from: A, to: B, weight: 2.5}
    - {from: B, to: C, label: road}

Examples:
  labgraph show graph.yaml --extended
  labgraph bfs graph.yaml --source A
  labgraph path graph.yaml --from A --to C
  labgraph mst graph.yaml --method prim --root A`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.level.Set(slog.LevelDebug)
			}
		},
	}
	root.SetOut(a.out)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	show := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the vertex list, or every incidence list with --extended",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}
	show.Flags().BoolVarP(&a.extended, "extended", "e", false, "print one line of incident edges per vertex")

	bfsCmd := &cobra.Command{
		Use:   "bfs FILE",
		Short: "Print the breadth-first visit order from a source vertex",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runBFS,
	}
	bfsCmd.Flags().StringVarP(&a.source, "source", "s", "", "vertex to start from")
	bfsCmd.Flags().IntVar(&a.maxDepth, "max-depth", 0, "stop below this depth (0 = no limit)")
	_ = bfsCmd.MarkFlagRequired("source")

	dfsCmd := &cobra.Command{
		Use:   "dfs FILE",
		Short: "Print the depth-first visit order over the whole graph",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDFS,
	}
	dfsCmd.Flags().StringVar(&a.start, "start", "", "only visit the component of this vertex")

	components := &cobra.Command{
		Use:   "components FILE",
		Short: "Print each connected component on its own line",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runComponents,
	}

	cycle := &cobra.Command{
		Use:   "cycle FILE",
		Short: "Print a cycle of the graph, if it has one",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runCycle,
	}

	weight := &cobra.Command{
		Use:   "weight FILE",
		Short: "Print the weight of the edge between two vertices",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runWeight,
	}
	path := &cobra.Command{
		Use:   "path FILE",
		Short: "Print a cheapest path between two vertices and its cost",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runPath,
	}
	for _, c := range []*cobra.Command{weight, path} {
		c.Flags().StringVar(&a.from, "from", "", "first vertex")
		c.Flags().StringVar(&a.to, "to", "", "second vertex")
		_ = c.MarkFlagRequired("from")
		_ = c.MarkFlagRequired("to")
	}

	mst := &cobra.Command{
		Use:   "mst FILE",
		Short: "Print the edges of a minimum spanning tree and its total weight",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runMST,
	}
	mst.Flags().StringVar(&a.method, "method", prim_kruskal.MethodKruskal, "algorithm: kruskal or prim")
	mst.Flags().StringVar(&a.root, "root", "", "vertex Prim grows from (default: first vertex)")

	root.AddCommand(show, bfsCmd, dfsCmd, components, cycle, weight, path, mst)

	return root
}

// load reads the description file and logs its size at debug level.
func (a *app) load(file string) (*core.Graph[string, any], error) {
	g, err := loader.Load(file)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph loaded", "file", file, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	g, err := a.load(args[0])
	if err != nil {
		return err
	}
	if a.extended {
		fmt.Fprintln(cmd.OutOrStdout(), g.StringExtended())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), g.String())
	}

	return nil
}

func (a *app) runBFS(cmd *cobra.Command, args []string) error {
	g, err := a.load(args[0])
	if err != nil {
		return err
	}
	res, err := bfs.BFS(g, a.source, bfs.WithMaxDepth[string](a.maxDepth))
	if err != nil {
		return fmt.Errorf("bfs from %q: %w", a.source, err)
	}
	a.logger.Debug("bfs done", "source", a.source, "visited", len(res.Order))
	fmt.Fprintln(cmd.OutOrStdout(), formatSeq(res.Order))

	return nil
}

func (a *app) runDFS(cmd *cobra.Command, args []string) error {
	g, err := a.load(args[0])
	if err != nil {
		return err
	}
	var opts []dfs.Option[string]
	if cmd.Flags().Changed("start") {
		opts = append(opts, dfs.WithStart(a.start))
	}
	res, err := dfs.DFS(g, opts...)
	if err != nil {
		return fmt.Errorf("dfs: %w", err)
	}
	a.logger.Debug("dfs done", "trees", len(res.Roots), "visited", len(res.Order))
	fmt.Fprintln(cmd.OutOrStdout(), formatSeq(res.Order))

	return nil
}

func (a *app) runComponents(cmd *cobra.Command, args []string) error {
	g, err := a.load(args[0])
	if err != nil {
		return err
	}
	comps, err := dfs.Components(g)
	if err != nil {
		return fmt.Errorf("components: %w", err)
	}
	for _, c := range comps {
		fmt.Fprintln(cmd.OutOrStdout(), formatSeq(c))
	}

	return nil
}

func (a *app) runCycle(cmd *cobra.Command, args []string) error {
	g, err := a.load(args[0])
	if err != nil {
		return err
	}
	cycle, ok, err := dfs.FindCycle(g)
	if err != nil {
		return fmt.Errorf("cycle: %w", err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no cycle")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatSeq(cycle))

	return nil
}

func (a *app) runWeight(cmd *cobra.Command, args []string) error {
	g, err := a.load(args[0])
	if err != nil {
		return err
	}
	if !g.HasEdge(a.from, a.to) {
		return fmt.Errorf("no edge between %q and %q", a.from, a.to)
	}
	w, err := g.Weight(a.from, a.to)
	if err != nil {
		return fmt.Errorf("weight of %q-%q: %w", a.from, a.to, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(w, 'f', -1, 64))

	return nil
}

func (a *app) runPath(cmd *cobra.Command, args []string) error {
	g, err := a.load(args[0])
	if err != nil {
		return err
	}
	if !g.HasVertex(a.to) {
		return fmt.Errorf("target %q: %w", a.to, core.ErrVertexNotFound)
	}
	res, err := dijkstra.Dijkstra(g, a.from)
	if err != nil {
		return fmt.Errorf("shortest paths from %q: %w", a.from, err)
	}
	path, err := res.PathTo(a.to)
	if errors.Is(err, dijkstra.ErrNoPath) {
		fmt.Fprintf(cmd.OutOrStdout(), "no path from %s to %s\n", a.from, a.to)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", formatSeq(path), strconv.FormatFloat(res.Dist[a.to], 'f', -1, 64))

	return nil
}

func (a *app) runMST(cmd *cobra.Command, args []string) error {
	g, err := a.load(args[0])
	if err != nil {
		return err
	}
	opts := []prim_kruskal.Option[string]{prim_kruskal.WithMethod[string](a.method)}
	if cmd.Flags().Changed("root") {
		opts = append(opts, prim_kruskal.WithRoot(a.root))
	}
	edges, total, err := prim_kruskal.Compute(g, opts...)
	if err != nil {
		return fmt.Errorf("mst (%s): %w", a.method, err)
	}
	a.logger.Debug("mst done", "method", a.method, "edges", len(edges))
	for _, e := range edges {
		fmt.Fprintln(cmd.OutOrStdout(), e.String())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "total %s\n", strconv.FormatFloat(total, 'f', -1, 64))

	return nil
}

// formatSeq renders vertices as "[A, B, C]".
func formatSeq(vs []string) string {
	return "[" + strings.Join(vs, ", ") + "]"
}
