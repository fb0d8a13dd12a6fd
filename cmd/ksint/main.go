// Command ksint runs a two-sample Kolmogorov-Smirnov test on integer data
// files.
//
// Inputs must be single-column headerless files, one integer per line. The
// samples are tested against each other at the 0.95 confidence level.
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
	log.SetPrefix("ksint: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s file1 file2

ksint reads two single-column integer data files and tests whether the two
samples come from the same distribution at the 0.95 confidence level.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	xs, err := readInts(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	ys, err := readInts(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}

	result := ks.Test(xs, ys, 0.95)

	if result.IsRejected {
		fmt.Println("Samples are from different distributions.")
	} else {
		fmt.Println("Samples are from the same distributions.")
	}

	fmt.Printf("test statistic = %v\n", result.Statistic)
	fmt.Printf("critical value = %v\n", result.CriticalValue)
	fmt.Printf("confidence = %v\n", result.Confidence)
}

func readInts(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vv []int64

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		vv = append(vv, v)
	}

	return vv, sc.Err()
}
