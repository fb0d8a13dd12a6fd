// Command ksnormal prints a sequence of Normal deviates, one per line,
// suitable as input for ksfloat and ksplot.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func main() {
	log.SetPrefix("ksnormal: ")
	log.SetFlags(0)

	seed := flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] num_deviates mean variance

ksnormal prints num_deviates floating point numbers, one per line, drawn
from a Normal distribution with the given mean and variance.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatal("num_deviates must be an integer")
	}
	mean, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		log.Fatal("mean must be a floating point number")
	}
	variance, err := strconv.ParseFloat(flag.Arg(2), 64)
	if err != nil {
		log.Fatal("variance must be a floating point number")
	}

	if n <= 0 || variance <= 0 {
		log.Fatal("num_deviates and variance must be positive")
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	dist := distuv.Normal{
		Mu:    mean,
		Sigma: math.Sqrt(variance),
		Src:   exprand.NewSource(*seed),
	}

	for i := 0; i < n; i++ {
		fmt.Println(dist.Rand())
	}
}
