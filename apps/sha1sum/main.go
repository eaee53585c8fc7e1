//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command sha1sum computes SHA-1 digests of files, standard input, or
// a generated benchmark input and prints the results as a table.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/markkurossi/sha1"
	"github.com/markkurossi/sha1/digest"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

var (
	verbose   = false
	multihash = false
)

func main() {
	log.SetFlags(0)

	fVerbose := flag.Bool("v", false, "Verbose output")
	fMultihash := flag.Bool("mh", false,
		"Print digests as base16 multihashes")
	fTiming := flag.Bool("time", false, "Print timing report")
	fBench := flag.Int("bench", 0,
		"Hash a generated 2^n-byte input instead of files")
	flag.Parse()

	verbose = *fVerbose
	multihash = *fMultihash

	timing := NewTiming()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Blocks").SetAlign(tabulate.MR)
	tab.Header("SHA-1").SetAlign(tabulate.ML)

	var hashed uint64

	if *fBench > 0 {
		label := "2" + superscript.Itoa(*fBench) + " B keystream"
		data := keystream(1 << *fBench)
		timing.Sample("Generate", []string{FileSize(len(data)).String()})
		hashed += hashRow(tab, timing, label, data)
	} else if len(flag.Args()) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read standard input: %s", err)
		}
		timing.Sample("Read", []string{FileSize(len(data)).String()})
		hashed += hashRow(tab, timing, "-", data)
	} else {
		for _, arg := range flag.Args() {
			data, err := os.ReadFile(arg)
			if err != nil {
				log.Fatalf("failed to read input file: %s", err)
			}
			timing.Sample("Read "+arg,
				[]string{FileSize(len(data)).String()})
			hashed += hashRow(tab, timing, arg, data)
		}
	}

	tab.Print(os.Stdout)

	if *fTiming {
		timing.Print(hashed)
	}
}

// hashRow digests data, appends a result row to the table, and
// returns the number of bytes hashed.
func hashRow(tab *tabulate.Tabulate, timing *Timing, label string,
	data []byte) uint64 {

	if verbose {
		fmt.Printf("hashing %s (%s)\n", label, FileSize(len(data)))
	}

	var sum string
	if multihash {
		d, err := digest.Sum(data)
		if err != nil {
			log.Fatalf("multihash encoding failed: %s", err)
		}
		sum = d.String()
	} else {
		d := sha1.Sum(data)
		sum = hex.EncodeToString(d[:])
	}
	timing.Sample("Hash "+label, []string{FileSize(len(data)).String()})

	// One block for every started 64 bytes after the terminator and
	// the 64-bit length field.
	blocks := (len(data)+8)/sha1.BlockSize + 1

	row := tab.Row()
	row.Column(label)
	row.Column(FileSize(len(data)).String())
	row.Column(strconv.Itoa(blocks))
	row.Column(sum)

	return uint64(len(data))
}
