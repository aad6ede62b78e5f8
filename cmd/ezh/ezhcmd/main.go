package ezhcmd

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/term"
	"nikand.dev/go/cli"
	"nikand.dev/go/hacked/hfmt"
	"tlog.app/go/eazy"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/icyveins7/ezh"
	"github.com/icyveins7/ezh/low"
	"github.com/icyveins7/ezh/tlio"
)

// Stdout is where commands print. Replaced in tests.
var Stdout io.Writer = os.Stdout

func App() *cli.Command {
	writeCmd := &cli.Command{
		Name:        "write,w",
		Description: "write values to a file",
		Usage:       "<kind:value>...",
		Action:      write,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("output,out,o", "-", "output file (- is stdout)"),
			cli.NewFlag("append,a", false, "append to the file instead of truncating it"),
			cli.NewFlag("eazy", false, "compress output with eazy"),
			cli.NewFlag("block-size,block,bs", 1*eazy.MiB, "eazy compression block size (window)"),
			cli.NewFlag("hash-table,ht", 1*1024, "eazy hash table size"),
		},
	}

	bufferCmd := &cli.Command{
		Name:        "buffer,buf,b",
		Description: "write values into a fixed size buffer and dump it",
		Usage:       "<kind:value>...",
		Action:      buffer,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("size,s", 64, "buffer size"),
			cli.NewFlag("offset,off", 0, "offset to write at"),
		},
	}

	sizeCmd := &cli.Command{
		Name:        "size,s",
		Description: "print number of bytes values take",
		Usage:       "<kind:value>...",
		Action:      size,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "ezh",
		Description: "write fixed width scalars",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("verbosity,v", "", "logger verbosity topics"),
			cli.NewFlag("order", "native", "byte order: native, le, be"),
			cli.FlagfileFlag,
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			writeCmd,
			bufferCmd,
			sizeCmd,
		},
	}

	return app
}

func before(c *cli.Command) error {
	tlog.DefaultLogger = tlog.New(tlog.NewConsoleWriter(os.Stderr, tlog.LstdFlags))

	tlog.SetVerbosity(c.String("verbosity"))

	return nil
}

func encoder(c *cli.Command) (e ezh.Encoder, err error) {
	switch q := c.String("order"); q {
	case "", "native":
	case "le", "little":
		e.Order = binary.LittleEndian
	case "be", "big":
		e.Order = binary.BigEndian
	default:
		return e, errors.New("unsupported byte order: %v", q)
	}

	return e, nil
}

func values(c *cli.Command) ([]ezh.Value, error) {
	vals, err := ezh.ParseValues(c.Args)
	if err != nil {
		return nil, errors.Wrap(err, "parse values")
	}

	tlog.V("values").Printw("values", "n", len(vals), "size", ezh.Size(vals...))

	return vals, nil
}

func write(c *cli.Command) (err error) {
	e, err := encoder(c)
	if err != nil {
		return err
	}

	vals, err := values(c)
	if err != nil {
		return err
	}

	name := c.String("output")

	w, err := openWriter(c, name)
	if err != nil {
		return errors.Wrap(err, "open output")
	}

	defer tlio.CloseWrap(w, name, &err)

	if (name == "" || name == "-") && isTerminal(w) {
		var b low.Buf

		_, err = e.WriteToStream(&b, vals...)
		if err != nil {
			return errors.Wrap(err, "encode")
		}

		_, err = io.WriteString(w, hex.Dump(b))

		return err
	}

	_, err = e.WriteToStream(w, vals...)
	if err != nil {
		return errors.Wrap(err, "write %v", name)
	}

	tlog.Printw("written", "file", name, "values", len(vals), "bytes", ezh.Size(vals...))

	return nil
}

func buffer(c *cli.Command) (err error) {
	e, err := encoder(c)
	if err != nil {
		return err
	}

	vals, err := values(c)
	if err != nil {
		return err
	}

	if c.Int("size") < 0 {
		return errors.New("negative buffer size: %v", c.Int("size"))
	}

	buf := make([]byte, c.Int("size"))

	off, err := e.WriteToBuffer(buf, c.Int("offset"), vals...)
	if err != nil {
		return errors.Wrap(err, "write buffer")
	}

	var b low.Buf

	b = hfmt.Appendf(b, "offset %d -> %d of %d", c.Int("offset"), off, len(buf))
	b.NewLine()
	b = append(b, hex.Dump(buf)...)
	b.NewLine()

	_, err = Stdout.Write(b)

	return err
}

func size(c *cli.Command) (err error) {
	vals, err := values(c)
	if err != nil {
		return err
	}

	var b low.Buf

	b = hfmt.Appendf(b, "%d", ezh.Size(vals...))
	b.NewLine()

	_, err = Stdout.Write(b)

	return err
}

func openWriter(c *cli.Command, name string) (w io.WriteCloser, err error) {
	if name == "" || name == "-" {
		return tlio.NopCloser{Writer: Stdout}, nil
	}

	ff := os.O_CREATE | os.O_WRONLY
	if c.Bool("append") {
		ff |= os.O_APPEND
	} else {
		ff |= os.O_TRUNC
	}

	f, err := os.OpenFile(name, ff, 0o644)
	if err != nil {
		return nil, err
	}

	if !c.Bool("eazy") {
		return f, nil
	}

	ew := eazy.NewWriter(f, c.Int("block-size"), c.Int("hash-table"))

	return tlio.WriteCloser{
		Writer: ew,
		Closer: tlio.CloserFunc(func() error {
			err := tlio.Close(ew)
			if e := f.Close(); err == nil {
				err = e
			}

			return err
		}),
	}, nil
}

func isTerminal(w io.Writer) bool {
	fd := tlio.Fd(w)
	if fd == ^uintptr(0) {
		return false
	}

	return term.IsTerminal(int(fd))
}
