package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/treehuff"
)

var log = logging.MustGetLogger("huffpack")

const progName = "huffpack"
const usageMessage = `
Usage: huffpack [OPTIONS] COMMAND ARGS...

Options:
  --strategy NAME, -s NAME
	Tree construction strategy: "sort" (default) or "heap".
  --debug, -d
	Log codec internals to standard error.

Commands:
  compress IN OUT
	Compress the file IN into the file OUT.
  decompress IN OUT
	Decompress the file IN into the file OUT.
  verify IN
	Compress and decompress IN in memory and report whether the
	result matches.
`

var ourFlags *flag.FlagSet

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func usageErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, fmt.Sprintf(format, args...))
	io.WriteString(os.Stderr, usageMessage)
	os.Exit(2)
}

func exitError(err error) {
	log.Errorf("%v", err)
	os.Exit(1)
}

func parseStrategy(name string) (huffman.Strategy, error) {
	switch strings.ToLower(name) {
	case "sort", "":
		return huffman.StableSortStrategy, nil
	case "heap":
		return huffman.HeapStrategy, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

func compressFile(inPath, outPath string, strategy huffman.Strategy) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	packed, err := pack(data, strategy)
	if err != nil {
		return err
	}
	log.Infof("%s: %d bytes -> %s: %d bytes", inPath, len(data), outPath, len(packed))
	return os.WriteFile(outPath, packed, 0o666)
}

func decompressFile(inPath, outPath string) error {
	packed, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	data, err := unpack(packed)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o666)
}

func verifyFile(inPath string, strategy huffman.Strategy) (bool, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return false, err
	}
	packed, err := pack(data, strategy)
	if err != nil {
		return false, err
	}
	unpacked, err := unpack(packed)
	if err != nil {
		return false, err
	}
	return bytes.Equal(data, unpacked), nil
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	var strategyName string
	ourFlags.StringVar(&strategyName, "strategy", "sort", "")
	ourFlags.StringVar(&strategyName, "s", "sort", "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage)
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	strategy, err := parseStrategy(strategyName)
	if err != nil {
		usageErrorf("%v", err)
	}

	args := ourFlags.Args()
	if len(args) == 0 {
		usageErrorf("missing COMMAND")
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "compress":
		if len(rest) != 2 {
			usageErrorf("compress takes IN and OUT")
		}
		err = compressFile(rest[0], rest[1], strategy)
	case "decompress":
		if len(rest) != 2 {
			usageErrorf("decompress takes IN and OUT")
		}
		err = decompressFile(rest[0], rest[1])
	case "verify":
		if len(rest) != 1 {
			usageErrorf("verify takes IN")
		}
		var match bool
		match, err = verifyFile(rest[0], strategy)
		if err == nil {
			if match {
				fmt.Printf("Done. Files matched!\n")
			} else {
				fmt.Printf("Done. Files did not match\n")
				os.Exit(1)
			}
		}
	default:
		usageErrorf("bad command %q", cmd)
	}

	if err != nil {
		exitError(err)
	}
}
