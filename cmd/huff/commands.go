package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/chronos-tachyon/hufftree/archive"
)

var errNoFiles = errors.New("no files given")

var compressCommand = &cli.Command{
	Name:      "compress",
	Usage:     "Compress files",
	ArgsUsage: "<file> [<file>...]",
	Action:    compress,
}

var decompressCommand = &cli.Command{
	Name:      "decompress",
	Usage:     "Decompress files produced by the compress command",
	ArgsUsage: "<file> [<file>...]",
	Action:    decompress,
}

var statsCommand = &cli.Command{
	Name:      "stats",
	Usage:     "Show the code book and sizes a file would compress to",
	ArgsUsage: "<file>",
	Flags:     []cli.Flag{jsonFlag},
	Action:    stats,
}

func compress(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errNoFiles
	}
	a := makeArchiver(ctx)
	for _, path := range ctx.Args().Slice() {
		bits, err := a.Compress(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%s: %d bits\n", a.CompressedPath(path), bits.Len())
	}
	return nil
}

func decompress(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errNoFiles
	}
	a := makeArchiver(ctx)
	for _, path := range ctx.Args().Slice() {
		out, err := a.ReconstructedPath(path)
		if err != nil {
			return err
		}
		data, err := a.Decompress(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%s: %d bytes\n", out, len(data))
	}
	return nil
}

func stats(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one file, got %d", ctx.NArg())
	}
	r, err := makeArchiver(ctx).Analyze(ctx.Args().First())
	if err != nil {
		return err
	}
	if ctx.Bool(jsonFlag.Name) {
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(ctx.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	renderReport(ctx.App.Writer, r)
	return nil
}

func renderReport(w io.Writer, r *archive.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Count", "Bits", "Code"})
	for _, e := range r.Entries {
		table.Append([]string{
			e.Symbol,
			strconv.FormatUint(e.Count, 10),
			strconv.Itoa(e.Bits),
			e.Code,
		})
	}
	table.Render()

	fmt.Fprintf(w, "input:      %d bytes\n", r.InputBytes)
	fmt.Fprintf(w, "compressed: %d bytes (%d header + %d payload bits), ratio %.3f\n",
		r.CompressedBytes, r.HeaderBytes, r.PayloadBits, r.Ratio())
	fmt.Fprintf(w, "deflate:    %d bytes\n", r.DeflateBytes)
	fmt.Fprintf(w, "tree:       height %d\n", r.TreeHeight)
}
