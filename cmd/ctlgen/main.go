// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/ctlgen/ctrl"
	"github.com/ezrec/ctlgen/rom"
)

func main() {
	var outdir string
	var base string
	var probe string
	var verbose bool

	flag.StringVar(&outdir, "o", ".", "Output directory for the ROM images")
	flag.StringVar(&base, "b", "ctrl", "Base name of the ROM image files")
	flag.StringVar(&probe, "p", "", "Decode the address expression, do not write images")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	gen := ctrl.New()

	// Inspect one ROM location instead of building the images.
	if len(probe) != 0 {
		addr, err := gen.Probe(probe)
		if err != nil {
			log.Fatalf("%v: %v", probe, err)
		}
		word := gen.ControlWord(addr)
		fmt.Printf("%#06x %v %v\n", addr, gen.Layout.Opcode(addr), word)
		return
	}

	im := rom.Build(gen)
	if verbose {
		log.Printf("%d words, %d byte planes", len(im.Words), im.Planes())
	}

	paths := im.WriteFiles(outdir, base)
	if verbose {
		for _, path := range paths {
			log.Printf("wrote %v", path)
		}
	}

	if len(paths) != im.Planes() {
		os.Exit(1)
	}
}
