// Command dyckgen writes binary test strings drawn from a registered
// generator, one string per seed, for statistical test batteries.
//
// Usage:
//
//	dyckgen [-nolen] [-force] [-skip N] [-seeds FILE] [-manifest FILE] NAME COUNT LOGLEN
//
// Each string holds 2^LOGLEN bits. Unless -nolen is given the output starts
// with the number of strings and the string length in bits, both as
// little-endian 64-bit integers. A COUNT of zero or less reads the count
// from the head of the -seeds list.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	jsoncanonicalizer "github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/mattn/go-isatty"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"

	dyckprng "github.com/opd-ai/go-dyckprng"
)

const (
	exitOK    = 0
	exitUsage = 2
	exitIO    = 10
)

const usage = "usage: dyckgen [-nolen] [-force] [-skip N] [-seeds FILE] [-manifest FILE] NAME COUNT LOGLEN"

// manifest describes a run so that a batch can be reproduced.
type manifest struct {
	Generator string `json:"generator"`
	BitWidth  int    `json:"bit_width"`
	Strings   int64  `json:"strings"`
	Skip      int64  `json:"skip"`
	LogLength uint   `json:"log_length"`
	Header    bool   `json:"header"`
	FirstSeed uint32 `json:"first_seed,omitempty"`
	SeedFile  string `json:"seed_file,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flag, args := flags.New(args, "-nolen", "-force")
	parm, args := parms.New(args, "-skip", "-seeds", "-manifest")

	if len(args) != 3 {
		fmt.Fprintln(stderr, usage)
		fmt.Fprintf(stderr, "generators: %s\n", strings.Join(dyckprng.Names(), " "))
		return exitUsage
	}
	name := args[0]
	count, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(stderr, "dyckgen: COUNT: %v\n", err)
		return exitUsage
	}
	logLength, err := strconv.ParseUint(args[2], 10, 8)
	if err != nil {
		fmt.Fprintf(stderr, "dyckgen: LOGLEN: %v\n", err)
		return exitUsage
	}
	var skip int64
	if s := parm.ByName["-skip"]; len(s) > 0 {
		if skip, err = strconv.ParseInt(s, 10, 64); err != nil {
			fmt.Fprintf(stderr, "dyckgen: -skip: %v\n", err)
			return exitUsage
		}
	}

	if f, ok := stdout.(*os.File); ok && !flag.ByName["-force"] && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(stderr, "dyckgen: refusing to write binary output to a terminal, use -force")
		return exitUsage
	}

	cfg := dyckprng.RunConfig{
		Strings:   count,
		LogLength: uint(logLength),
		Skip:      skip,
		Header:    !flag.ByName["-nolen"],
		Progress:  stderr,
	}

	seedFile := parm.ByName["-seeds"]
	if len(seedFile) > 0 {
		f, err := os.Open(seedFile)
		if err != nil {
			fmt.Fprintf(stderr, "dyckgen: %v\n", err)
			return exitIO
		}
		defer f.Close()
		cfg.Seeds = dyckprng.NewSeedReader(bufio.NewReader(f))
		if count <= 0 {
			if cfg.Strings, err = cfg.Seeds.ReadSeedCount(); err != nil {
				fmt.Fprintf(stderr, "dyckgen: %s: %v\n", seedFile, err)
				return exitIO
			}
		}
	} else if count <= 0 {
		fmt.Fprintln(stderr, "dyckgen: COUNT must be positive without -seeds")
		return exitUsage
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "dyckgen: %v\n", err)
		return exitUsage
	}

	src, err := dyckprng.New(name, dyckprng.Options{LogLength: cfg.LogLength})
	if err != nil {
		fmt.Fprintf(stderr, "dyckgen: %v\n", err)
		fmt.Fprintf(stderr, "generators: %s\n", strings.Join(dyckprng.Names(), " "))
		return exitUsage
	}

	if path := parm.ByName["-manifest"]; len(path) > 0 {
		m := manifest{
			Generator: name,
			BitWidth:  src.BitWidth(),
			Strings:   cfg.Strings,
			Skip:      cfg.Skip,
			LogLength: cfg.LogLength,
			Header:    cfg.Header,
			SeedFile:  seedFile,
		}
		if cfg.Seeds == nil {
			m.FirstSeed = dyckprng.DefaultFirstSeed
		}
		if err := writeManifest(path, m); err != nil {
			fmt.Fprintf(stderr, "dyckgen: %v\n", err)
			return exitIO
		}
	}

	if err := dyckprng.Run(stdout, src, cfg); err != nil {
		fmt.Fprintf(stderr, "dyckgen: %v\n", err)
		if dyckprng.IsSeedFileError(err) {
			return exitUsage
		}
		return exitIO
	}
	return exitOK
}

// writeManifest stores m as canonical JSON so equal runs give equal files.
func writeManifest(path string, m manifest) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	canon, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return fmt.Errorf("manifest: canonicalize: %w", err)
	}
	return os.WriteFile(path, append(canon, '\n'), 0o644)
}
