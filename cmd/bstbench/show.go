package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/bst/persistent/bst"
	"github.com/urfave/cli/v2"
)

func runShow(cctx *cli.Context) error {
	tree := bst.Ordered[int]()
	for _, arg := range cctx.Args().Slice() {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("not an integer: %q", arg)
		}
		tree = tree.Insert(v)
	}
	for _, v := range cctx.IntSlice("delete") {
		if !tree.Lookup(v) {
			fmt.Fprintf(cctx.App.Writer, "%d not in tree\n", v)
		}
		tree = tree.Delete(v)
	}
	out := cctx.App.Writer
	key := color.New(color.Bold)
	if cctx.Bool("no-color") {
		key.DisableColor()
	}
	fmt.Fprint(out, tree.String())
	fmt.Fprintf(out, "%s %d\n", key.Sprint("height:"), tree.Height())
	fmt.Fprintf(out, "%s %v\n", key.Sprint("min:"), tree.Min())
	if cctx.Bool("verify") {
		if err := tree.Check(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s ok\n", key.Sprint("invariants:"))
	}
	return nil
}
