// Command ksfloat runs a two-sample Kolmogorov-Smirnov test on floating
// point data files.
//
// Inputs must be single-column headerless files, one number per line. The
// samples are tested against each other at the 0.95 confidence level. Any
// NaN in the input aborts the test, there is no ordering for it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ksmirnov/ks"
)

func main() {
	log.SetPrefix("ksfloat: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s file1 file2

ksfloat reads two single-column floating point data files and tests whether
the two samples come from the same distribution at the 0.95 confidence
level.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	xs, err := readFloats(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	ys, err := readFloats(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}

	result := ks.TestFloat64(xs, ys, 0.95)

	if result.IsRejected {
		fmt.Println("Samples are from different distributions.")
	} else {
		fmt.Println("Samples are from the same distributions.")
	}

	fmt.Printf("test statistic = %v\n", result.Statistic)
	fmt.Printf("critical value = %v\n", result.CriticalValue)
	fmt.Printf("confidence = %v\n", result.Confidence)
}

func readFloats(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vv []float64

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		vv = append(vv, v)
	}

	return vv, sc.Err()
}
