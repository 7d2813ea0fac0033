// Copyright 2025, The universal-compressor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare the universal compressor pipeline against
// reference compression implementations. Individual implementations are
// referred to as codecs.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-codecs uc:omega,uc:fib,flate,zstd,xz \
//		-files  repeats,lowent                \
//		-tests  ratio,encRate                 \
//		-sizes  1e4,1e5,1e6
//
//	BENCHMARK: ratio
//		benchmark        uc:omega  uc:fib  flate  zstd  xz
//		repeats:10Ki         1.65    1.69   3.29  3.70  3.51
//		...
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dsnet/golib/strconv"

	"github.com/marcinwilkdev/universal-compressor/internal/tool/bench"
)

var (
	codecs string
	files  string
	sizes  string
	tests  string
)

func main() {
	flag.StringVar(&codecs, "codecs", strings.Join(bench.Names(), ","),
		"comma-separated list of codecs to benchmark")
	flag.StringVar(&files, "files", "zeros,random,lowent,repeats",
		"comma-separated list of synthesized input classes")
	flag.StringVar(&sizes, "sizes", "1e4,1e5,1e6",
		"comma-separated list of input sizes")
	flag.StringVar(&tests, "tests", "encRate,decRate,ratio",
		"comma-separated list of tests to run")
	flag.Parse()

	codecList := strings.Split(codecs, ",")
	for _, name := range codecList {
		if _, ok := bench.Codecs[name]; !ok {
			fmt.Fprintf(os.Stderr, "unknown codec: %s\n", name)
			os.Exit(1)
		}
	}

	var sizeList []int
	for _, s := range strings.Split(sizes, ",") {
		var f float64
		if _, err := fmt.Sscanf(s, "%g", &f); err != nil || f < 1 {
			fmt.Fprintf(os.Stderr, "invalid size: %s\n", s)
			os.Exit(1)
		}
		sizeList = append(sizeList, int(f))
	}

	for _, test := range strings.Split(tests, ",") {
		fmt.Printf("BENCHMARK: %s\n", test)
		tw := tabwriter.NewWriter(os.Stdout, 1, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "\tbenchmark\t%s\t\n", strings.Join(codecList, "\t"))

		for _, file := range strings.Split(files, ",") {
			for _, size := range sizeList {
				input := bench.TestInput(file, size)
				cells := []string{fmt.Sprintf("\t%s:%s", file, strconv.FormatPrefix(float64(size), strconv.Base1024, 0))}
				for _, name := range codecList {
					c := bench.Codecs[name]
					switch test {
					case "encRate":
						rate := bench.Rate(bench.BenchmarkEncode(c, input))
						cells = append(cells, strconv.FormatPrefix(rate, strconv.Base1024, 2)+"B/s")
					case "decRate":
						rate := bench.Rate(bench.BenchmarkDecode(c, input))
						cells = append(cells, strconv.FormatPrefix(rate, strconv.Base1024, 2)+"B/s")
					case "ratio":
						cells = append(cells, fmt.Sprintf("%0.2f", bench.Ratio(c, input)))
					default:
						fmt.Fprintf(os.Stderr, "unknown test: %s\n", test)
						os.Exit(1)
					}
				}
				fmt.Fprintf(tw, "%s\t\n", strings.Join(cells, "\t"))
			}
		}
		tw.Flush()
		fmt.Println()
	}
}
