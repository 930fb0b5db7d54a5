// Command huff compresses and decompresses files with Huffman coding.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/chronos-tachyon/hufftree/archive"
)

var (
	suffixFlag = &cli.StringFlag{
		Name:  "suffix",
		Usage: "Suffix appended to compressed artifacts",
		Value: archive.DefaultConfig.Suffix,
	}
	markerFlag = &cli.StringFlag{
		Name:  "marker",
		Usage: "Marker inserted before the extension of reconstructed files",
		Value: archive.DefaultConfig.Marker,
	}
	bufferSizeFlag = &cli.IntFlag{
		Name:  "buffer-size",
		Usage: "Size in bytes of the file buffers",
		Value: archive.DefaultConfig.BufferSize,
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the report as JSON",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "huff",
		Usage: "Huffman file compressor",
		Flags: []cli.Flag{
			suffixFlag,
			markerFlag,
			bufferSizeFlag,
			verbosityFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			compressCommand,
			decompressCommand,
			statsCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	level := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(ctx.App.ErrWriter, level, false)))
	return nil
}

func makeArchiver(ctx *cli.Context) *archive.Archiver {
	return archive.New(&archive.Config{
		Suffix:     ctx.String(suffixFlag.Name),
		Marker:     ctx.String(markerFlag.Name),
		BufferSize: ctx.Int(bufferSizeFlag.Name),
		Logger:     log.Root(),
	})
}
