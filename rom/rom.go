// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rom

import (
	"fmt"
	"iter"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/ctlgen/ctrl"
)

// WordWidth is the control word width in bits.
const WordWidth = 64

// Image is a fully evaluated control ROM: one control word per address,
// sliced on output into byte planes, one plane per physical EEPROM.
type Image struct {
	Words []ctrl.Word
}

// Build evaluates the generator over the full address space. Every address
// is independent, so evaluation order is immaterial.
func Build(gen *ctrl.Generator) *Image {
	size := gen.Layout.Size()
	im := &Image{Words: make([]ctrl.Word, size)}
	for addr := range size {
		im.Words[addr] = gen.ControlWord(addr)
	}
	return im
}

// Planes is the number of byte planes, one per ROM chip.
func (im *Image) Planes() int {
	return WordWidth / 8
}

// Plane slices out byte plane k, least-significant plane first. Position i
// of the result holds bits 8k+7:8k of the word at address i.
func (im *Image) Plane(k int) (plane []byte, err error) {
	if k < 0 || k >= im.Planes() {
		err = ErrPlaneRange(k)
		return
	}
	plane = make([]byte, len(im.Words))
	for addr, word := range im.Words {
		plane[addr] = byte(word >> (8 * k))
	}
	return
}

// Bits streams the image least-significant bit first, one word after
// another.
func (im *Image) Bits() iter.Seq[bool] {
	return func(yield func(value bool) bool) {
		for _, word := range im.Words {
			for bitpos := range WordWidth {
				bit := (word & (1 << bitpos)) != 0
				if !yield(bit) {
					return
				}
			}
		}
	}
}

// WriteFiles writes every byte plane to <base><k+1>.bin under dir, each
// exactly one ROM's length of raw bytes, no header. A destination that
// cannot be written is reported to the operator and skipped; the remaining
// planes are still written. Returns the paths written.
func (im *Image) WriteFiles(dir string, base string) (paths []string) {
	for k := range im.Planes() {
		plane, err := im.Plane(k)
		if err != nil {
			log.Printf("ctlgen: %v", err)
			continue
		}

		path := filepath.Join(dir, fmt.Sprintf("%v%d.bin", base, k+1))
		ouf, err := os.Create(path)
		if err != nil {
			log.Printf("ctlgen: %v: %v", path, err)
			continue
		}

		_, err = ouf.Write(plane)
		if cerr := ouf.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Printf("ctlgen: %v: %v", path, err)
			continue
		}

		paths = append(paths, path)
	}

	return
}
