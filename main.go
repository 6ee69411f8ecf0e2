package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ztrue/tracerr"

	"github.com/givxl33t/torrentinfo/bencode"
	"github.com/givxl33t/torrentinfo/torrentparser"
)

const usage = `usage: torrentinfo <command> [flags] <arg>

commands:
  decode <bencoded value>   print the value as JSON
  info <source>             print tracker, length, info hash and piece hashes
  magnet <source>           print a magnet link for the torrent

a source is a .torrent file or a magnet link.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cmd := newCommand(os.Args[1])
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	err := cmd.run(os.Args[2:], os.Stdout, os.Stderr)
	if err != nil {
		if cmd.trace {
			tracerr.Print(err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type command struct {
	flags    *flag.FlagSet
	trace    bool
	maxDepth int
	exec     func(c *command, arg string, stdout, stderr io.Writer) error
}

func newCommand(name string) *command {
	c := &command{flags: flag.NewFlagSet(name, flag.ContinueOnError)}
	c.flags.BoolVar(&c.trace, "trace", false, "print a stack trace on error")
	c.flags.IntVar(&c.maxDepth, "max-depth", bencode.DefaultMaxDepth, "maximum nesting of lists and dictionaries")

	switch name {
	case "decode":
		c.exec = runDecode
	case "info":
		c.exec = runInfo
	case "magnet":
		c.exec = runMagnet
	default:
		return nil
	}
	return c
}

func (c *command) run(args []string, stdout, stderr io.Writer) error {
	c.flags.SetOutput(stderr)
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	if c.flags.NArg() != 1 {
		return fmt.Errorf("%s: expected exactly one argument, got %d", c.flags.Name(), c.flags.NArg())
	}
	return c.exec(c, c.flags.Arg(0), stdout, stderr)
}

func runDecode(c *command, arg string, stdout, _ io.Writer) error {
	dec := bencode.Decoder{MaxDepth: c.maxDepth}
	v, err := dec.Unmarshal([]byte(arg))
	if err != nil {
		return tracerr.Wrap(err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		return tracerr.Wrap(err)
	}
	fmt.Fprintln(stdout, string(out))
	return nil
}

func runInfo(c *command, arg string, stdout, stderr io.Writer) error {
	src, err := c.open(arg)
	if err != nil {
		return err
	}

	if src.Torrent == nil {
		m := src.Magnet
		for _, tr := range m.TrackerURLs {
			fmt.Fprintln(stdout, "Tracker URL:", tr)
		}
		if m.Name != "" {
			fmt.Fprintln(stdout, "Name:", m.Name)
		}
		fmt.Fprintln(stdout, "Info Hash:", hex.EncodeToString(m.InfoHash[:]))
		return nil
	}

	tf := src.Torrent
	fmt.Fprintln(stdout, "Tracker URL:", tf.Announce)
	switch layout := tf.Info.Layout.(type) {
	case torrentparser.SingleFile:
		fmt.Fprintln(stdout, "Length:", layout.Length)
	case torrentparser.MultiFile:
		fmt.Fprintln(stdout, "Length:", tf.Info.TotalLength())
		fmt.Fprintln(stdout, "Files:")
		for _, f := range tf.Info.Files() {
			fmt.Fprintf(stdout, "  %s (%d bytes)\n", f.Path, f.Length)
		}
	}
	fmt.Fprintln(stdout, "Info Hash:", tf.InfoHashHex())
	fmt.Fprintln(stdout, "Piece Length:", tf.Info.PieceLength)
	fmt.Fprintln(stdout, "Piece Hashes:")
	for _, h := range tf.Info.Pieces {
		fmt.Fprintln(stdout, hex.EncodeToString(h[:]))
	}

	if raw, ok := tf.RawInfoHash(); ok && raw != tf.InfoHash() {
		fmt.Fprintf(stderr, "warning: info dict is not canonical, source bytes hash to %x\n", raw)
	}
	return nil
}

func runMagnet(c *command, arg string, stdout, _ io.Writer) error {
	src, err := c.open(arg)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, src.Magnet)
	return nil
}

func (c *command) open(source string) (torrentparser.Source, error) {
	src, err := torrentparser.NewWith(&bencode.Decoder{MaxDepth: c.maxDepth}, source)
	if err != nil {
		return torrentparser.Source{}, tracerr.Wrap(err)
	}
	return src, nil
}
