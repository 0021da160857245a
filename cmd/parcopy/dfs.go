package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bboissin/thesis-bboissin/cfg"
	"github.com/bboissin/thesis-bboissin/dfs"
	"github.com/bboissin/thesis-bboissin/internal/yamlfile"
)

func newDFSCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dfs <graph.yaml>",
		Short: "Number a control-flow graph by depth-first search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDFS(cmd, args[0], format)
		},
	}
	cmd.Flags().StringVar(&format, "format", outputText, "output format: text or yaml")

	return cmd
}

func (a *app) runDFS(cmd *cobra.Command, path, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	in, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer in.Close()

	g, err := yamlfile.DecodeGraph(in)
	if err != nil {
		return err
	}
	a.log.Debug("graph loaded", "file", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	res, err := dfs.Search(g,
		dfs.WithContext(cmd.Context()),
		dfs.WithOnVisit(func(n cfg.Node) error {
			a.log.Debug("visit", "node", n.String())
			return nil
		}),
	)
	if err != nil {
		return err
	}
	if unreached := g.NodeCount() - len(res.Preorder); unreached > 0 {
		a.log.Warn("nodes unreachable from root", "root", res.Root.String(), "count", unreached)
	}

	out := cmd.OutOrStdout()
	if format == outputYAML {
		return yamlfile.EncodeNumbering(out, g, res)
	}

	return writeNumbering(out, g, res)
}

// writeNumbering prints one line per reached node in pre-order followed by
// the reverse post-order and the loop headers.
func writeNumbering(w io.Writer, g *cfg.Graph, res *dfs.VisitOrder) error {
	for _, n := range res.Preorder {
		parent := "-"
		if p, ok := res.Parent[n]; ok {
			parent = p.String()
		}
		if _, err := fmt.Fprintf(w, "%s pre=%d post=%d depth=%d parent=%s\n",
			n, res.Pre[n], res.Post[n], res.Depth[n], parent); err != nil {
			return err
		}
	}

	back, err := res.BackEdges(g)
	if err != nil {
		return err
	}
	for _, e := range back {
		if _, err := fmt.Fprintf(w, "back %s->%s\n", e.From, e.To); err != nil {
			return err
		}
	}

	headers, err := res.LoopHeaders(g)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "rpo %v\nloop headers %v\n", res.ReversePostorder(), headers)

	return err
}
