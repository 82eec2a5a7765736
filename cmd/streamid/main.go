package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ipfs/go-cid"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"xdao.co/streamid/config"
	"xdao.co/streamid/model"
	"xdao.co/streamid/streamid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "parse":
		return cmdParse(args[1:], out, errOut)
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "genesis":
		return cmdGenesis(args[1:], out, errOut)
	case "at-commit":
		return cmdAtCommit(args[1:], out, errOut)
	case "base":
		return cmdBase(args[1:], out, errOut)
	case "bytes":
		return cmdBytes(args[1:], out, errOut)
	case "from-bytes":
		return cmdFromBytes(args[1:], out, errOut)
	case "types":
		return cmdTypes(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "streamid: stream and commit identifier tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  streamid parse [--mode any|stream|commit] [--json] <id-or-url>")
	fmt.Fprintln(w, "  streamid encode [--type <name|code>] --genesis <CID> [--commit <CID> | --zero-commit] [--url]")
	fmt.Fprintln(w, "  streamid genesis [--type <name|code>] [--url] <file>")
	fmt.Fprintln(w, "  streamid at-commit [--url] <id-or-url> <CID|0>")
	fmt.Fprintln(w, "  streamid base [--url] <id-or-url>")
	fmt.Fprintln(w, "  streamid bytes <id-or-url>")
	fmt.Fprintln(w, "  streamid from-bytes [--mode any|stream|commit] [--url] <hex>")
	fmt.Fprintln(w, "  streamid types")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common flags:")
	fmt.Fprintln(w, "  --config <file>   YAML or JSON settings (default: $"+config.EnvVar+")")
	fmt.Fprintln(w, "  -v, --verbose     debug logging to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - ids are printed in base36; --url (or output: url) prints ceramic:// URLs")
	fmt.Fprintln(w, "  - genesis reads JSON (.json, .jsonc) or YAML documents and hashes them as DAG-CBOR")
	fmt.Fprintln(w, "  - a commit of 0 denotes the genesis commit")
}

// env is the per-invocation state shared by subcommands.
type env struct {
	cfg    config.Config
	log    hclog.Logger
	useURL bool
}

type commonFlags struct {
	configPath string
	verbose    bool
	url        bool
}

func newFlagSet(name string, errOut io.Writer, c *commonFlags, withURL bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.configPath, "config", "", "Settings file (YAML or JSON)")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "Debug logging")
	if withURL {
		fs.BoolVar(&c.url, "url", false, "Print ceramic:// URLs")
	}
	return fs
}

func (c commonFlags) setup(errOut io.Writer) (*env, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Level()
	if c.verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "streamid",
		Level:  level,
		Output: errOut,
	})
	logger.Debug("loaded config", "default_type", cfg.DefaultType, "output", cfg.Output, "mode", cfg.Mode)
	return &env{
		cfg:    cfg,
		log:    logger,
		useURL: c.url || cfg.Output == config.OutputURL,
	}, nil
}

func (e *env) print(out io.Writer, ref streamid.Ref) {
	if e.useURL {
		_, _ = fmt.Fprintln(out, ref.URL())
		return
	}
	_, _ = fmt.Fprintln(out, ref.String())
}

func parseFlags(fs *pflag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0, false
		}
		return 2, false
	}
	return 0, true
}

func cmdParse(args []string, out io.Writer, errOut io.Writer) int {
	var c commonFlags
	var modeName string
	var asJSON bool
	fs := newFlagSet("parse", errOut, &c, false)
	fs.StringVar(&modeName, "mode", "", "Accepted shape: any, stream or commit")
	fs.BoolVar(&asJSON, "json", false, "Print the JSON description")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: streamid parse [--mode any|stream|commit] [--json] <id-or-url>")
		return 2
	}
	e, err := c.setup(errOut)
	if err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return 1
	}
	if modeName == "" {
		modeName = e.cfg.Mode
	}

	resp, err := model.Parse(model.ParseRequest{Input: fs.Arg(0), Mode: modeName})
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 2
	}
	if resp.Error != nil {
		e.log.Debug("parse failed", "input", resp.Input, "code", resp.Error.Code)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			fmt.Fprintf(errOut, "encode json: %v\n", err)
			return 1
		}
		if resp.Error != nil {
			return 1
		}
		return 0
	}

	if resp.Error != nil {
		fmt.Fprintf(errOut, "invalid: %s\n", resp.Error.Message)
		return 1
	}
	v := resp.Ref
	fmt.Fprintf(out, "kind: %s\n", v.Kind)
	fmt.Fprintf(out, "type: %s (%d)\n", v.StreamType, v.StreamTypeCode)
	fmt.Fprintf(out, "genesis: %s\n", v.GenesisCID)
	fmt.Fprintf(out, "stream: %s\n", v.StreamID)
	if v.Kind == model.KindCommit {
		fmt.Fprintf(out, "commit id: %s\n", v.CommitID)
		if v.Commit != "" {
			fmt.Fprintf(out, "commit: %s\n", v.Commit)
		} else {
			fmt.Fprintln(out, "commit: genesis")
		}
	}
	fmt.Fprintf(out, "url: %s\n", v.URL)
	return 0
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	var c commonFlags
	var typeName, genesisStr, commitStr string
	var zero bool
	fs := newFlagSet("encode", errOut, &c, true)
	fs.StringVar(&typeName, "type", "", "Stream type name or code (default from config)")
	fs.StringVar(&genesisStr, "genesis", "", "Genesis CID")
	fs.StringVar(&commitStr, "commit", "", "Commit CID")
	fs.BoolVar(&zero, "zero-commit", false, "Produce a commit id pinned at genesis")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if genesisStr == "" || fs.NArg() != 0 || (zero && commitStr != "") {
		fmt.Fprintln(errOut, "usage: streamid encode [--type <name|code>] --genesis <CID> [--commit <CID> | --zero-commit] [--url]")
		return 2
	}
	e, err := c.setup(errOut)
	if err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return 1
	}
	t, err := e.streamType(typeName)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --type: %v\n", err)
		return 2
	}
	genesis, err := cid.Parse(genesisStr)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --genesis: %v\n", err)
		return 1
	}

	var ref streamid.Ref = streamid.NewStreamID(t, genesis)
	switch {
	case zero:
		ref = ref.AtCommit(cid.Undef)
	case commitStr != "":
		commit, err := cid.Parse(commitStr)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --commit: %v\n", err)
			return 1
		}
		ref = ref.AtCommit(commit)
	}
	e.log.Debug("encoded", "type", t, "genesis", genesis, "bytes", len(ref.Bytes()))
	e.print(out, ref)
	return 0
}

func cmdGenesis(args []string, out io.Writer, errOut io.Writer) int {
	var c commonFlags
	var typeName string
	fs := newFlagSet("genesis", errOut, &c, true)
	fs.StringVar(&typeName, "type", "", "Stream type name or code (default from config)")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: streamid genesis [--type <name|code>] [--url] <file>")
		return 2
	}
	e, err := c.setup(errOut)
	if err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return 1
	}
	t, err := e.streamType(typeName)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --type: %v\n", err)
		return 2
	}

	path := fs.Arg(0)
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "read %s: %v\n", filepath.Base(path), err)
		return 1
	}
	doc, err := decodeDocument(path, b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid genesis document: %v\n", err)
		return 1
	}
	id, err := streamid.FromGenesis(t, doc)
	if err != nil {
		fmt.Fprintf(errOut, "derive stream id: %v\n", err)
		return 1
	}
	e.log.Debug("derived stream id", "file", filepath.Base(path), "genesis", id.CID())
	e.print(out, id)
	return 0
}

// decodeDocument reads JSON for .json and .jsonc files (comments and trailing
// commas allowed, numbers kept exact) and YAML otherwise.
func decodeDocument(path string, b []byte) (any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(b)))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		if dec.More() {
			return nil, errors.New("trailing data after JSON document")
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func cmdAtCommit(args []string, out io.Writer, errOut io.Writer) int {
	var c commonFlags
	fs := newFlagSet("at-commit", errOut, &c, true)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(errOut, "usage: streamid at-commit [--url] <id-or-url> <CID|0>")
		return 2
	}
	e, err := c.setup(errOut)
	if err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return 1
	}
	ref, err := streamid.ParseRef(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid id: %v\n", err)
		return 1
	}
	commit := cid.Undef
	if s := fs.Arg(1); s != "0" {
		commit, err = cid.Parse(s)
		if err != nil {
			fmt.Fprintf(errOut, "invalid commit: %v\n", err)
			return 1
		}
	}
	e.print(out, ref.AtCommit(commit))
	return 0
}

func cmdBase(args []string, out io.Writer, errOut io.Writer) int {
	var c commonFlags
	fs := newFlagSet("base", errOut, &c, true)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: streamid base [--url] <id-or-url>")
		return 2
	}
	e, err := c.setup(errOut)
	if err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return 1
	}
	ref, err := streamid.ParseRef(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid id: %v\n", err)
		return 1
	}
	e.print(out, ref.BaseID())
	return 0
}

func cmdBytes(args []string, out io.Writer, errOut io.Writer) int {
	var c commonFlags
	fs := newFlagSet("bytes", errOut, &c, false)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: streamid bytes <id-or-url>")
		return 2
	}
	if _, err := c.setup(errOut); err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return 1
	}
	ref, err := streamid.ParseRef(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid id: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, hex.EncodeToString(ref.Bytes()))
	return 0
}

func cmdFromBytes(args []string, out io.Writer, errOut io.Writer) int {
	var c commonFlags
	var modeName string
	fs := newFlagSet("from-bytes", errOut, &c, true)
	fs.StringVar(&modeName, "mode", "", "Accepted shape: any, stream or commit")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: streamid from-bytes [--mode any|stream|commit] [--url] <hex>")
		return 2
	}
	e, err := c.setup(errOut)
	if err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return 1
	}
	mode := e.cfg.ParseMode()
	if modeName != "" {
		m, ok := streamid.ParseMode(modeName)
		if !ok {
			fmt.Fprintf(errOut, "invalid --mode: %s\n", modeName)
			return 2
		}
		mode = m
	}
	b, err := hex.DecodeString(strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		fmt.Fprintf(errOut, "invalid hex: %v\n", err)
		return 1
	}
	ref, err := streamid.Decode(b, mode)
	if err != nil {
		e.log.Debug("decode failed", "mode", mode, "kind", streamid.KindOf(err))
		fmt.Fprintf(errOut, "invalid: %v\n", err)
		return 1
	}
	e.print(out, ref)
	return 0
}

func cmdTypes(args []string, out io.Writer, errOut io.Writer) int {
	fs := pflag.NewFlagSet("types", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: streamid types")
		return 2
	}
	for _, t := range streamid.StreamTypes {
		fmt.Fprintf(out, "%d\t%s\n", t.Code(), t)
	}
	return 0
}

// streamType resolves a --type value given as a name or numeric code,
// falling back to the configured default.
func (e *env) streamType(s string) (streamid.StreamType, error) {
	if s == "" {
		return e.cfg.StreamType(), nil
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return streamid.StreamTypeFromCode(n)
	}
	return streamid.ParseStreamType(s)
}
