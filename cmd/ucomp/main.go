// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ucomp compresses and decompresses files with the two-stage
// LZW + universal-code pipeline.
//
// Example usage:
//	$ ucomp -f twain.txt -o twain.uc -e fib
//	$ ucomp -d -f twain.uc -o twain.txt -e fib
//
// The output of an encode starts with an 8-byte big-endian count of the
// payload bits, followed by the payload packed most-significant bit
// first. The encoding variant is not stored; decoding with a different
// -e than the one used to encode produces garbage or an error.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	compressor "github.com/marcinwilkdev/universal-compressor"
	"github.com/marcinwilkdev/universal-compressor/bitbuf"
)

const headerSize = 8

func main() {
	log.SetFlags(0)
	log.SetPrefix("ucomp: ")

	var (
		file     string
		output   string
		decode   bool
		encoding string
	)
	flag.StringVar(&file, "f", "", "input `path` (shorthand)")
	flag.StringVar(&file, "file", "", "input `path`")
	flag.StringVar(&output, "o", "", "output `path` (shorthand)")
	flag.StringVar(&output, "output", "", "output `path`")
	flag.BoolVar(&decode, "d", false, "decode instead of encode (shorthand)")
	flag.BoolVar(&decode, "decode", false, "decode instead of encode")
	flag.StringVar(&encoding, "e", "omega", "integer `encoding`: omega, delta, gamma, or fib (shorthand)")
	flag.StringVar(&encoding, "encoding", "omega", "integer `encoding`: omega, delta, gamma, or fib")
	flag.Parse()

	if file == "" || output == "" {
		flag.Usage()
		os.Exit(2)
	}
	enc, err := compressor.ParseEncoding(encoding)
	if err != nil {
		log.Fatalf("%v: %q", err, encoding)
	}

	input, err := os.ReadFile(file)
	if err != nil {
		log.Fatal(err)
	}

	var out []byte
	if decode {
		if out, err = decodeFile(input, enc); err != nil {
			log.Fatal(err)
		}
	} else {
		bits := compressor.Encode(input, enc)
		out = make([]byte, headerSize, headerSize+len(bits.Bytes()))
		binary.BigEndian.PutUint64(out, uint64(bits.Len()))
		out = append(out, bits.Bytes()...)
		log.Printf("%s: %d => %d bytes (%s)", file, len(input), len(out), ratio(len(input), len(out)))
	}

	if err := os.WriteFile(output, out, 0666); err != nil {
		log.Fatal(err)
	}
}

func decodeFile(input []byte, enc compressor.Encoding) ([]byte, error) {
	if len(input) < headerSize {
		return nil, fmt.Errorf("truncated header: %d bytes", len(input))
	}
	numBits := binary.BigEndian.Uint64(input[:headerSize])
	payload := input[headerSize:]
	if uint64(len(payload)) != (numBits+7)/8 {
		return nil, fmt.Errorf("payload of %d bytes cannot hold %d bits", len(payload), numBits)
	}
	return compressor.Decode(bitbuf.From(int(numBits), payload), enc)
}

func ratio(in, out int) string {
	if in == 0 {
		return "empty input"
	}
	return fmt.Sprintf("%.2f%%", 100*float64(out)/float64(in))
}
