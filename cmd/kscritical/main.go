// Command kscritical prints a table of two-sample Kolmogorov-Smirnov
// critical values.
//
// For a fixed first sample size it tabulates the critical value against
// second sample sizes 16 through limit inclusive, one row per size.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ksmirnov/ks"
)

func main() {
	log.SetPrefix("kscritical: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s confidence num_samples limit

kscritical prints the critical values of the two-sample Kolmogorov-Smirnov
test for samples of size num_samples against samples of sizes 16 through
limit inclusive at the given confidence level. Only the 0.95 confidence
level is currently supported.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	confidence, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		log.Fatal("confidence must be a floating point number")
	}
	n1, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatal("num_samples must be an integer")
	}
	limit, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatal("limit must be an integer")
	}

	if n1 <= 0 || limit <= 0 {
		log.Fatal("num_samples and limit must be positive")
	}
	if confidence <= 0 || confidence >= 1 {
		log.Fatal("confidence must be strictly between zero and one")
	}

	fmt.Println("n1\tn2\tconfidence\tcritical_value")
	for n2 := 16; n2 <= limit; n2++ {
		fmt.Printf("%d\t%d\t%v\t%v\n", n1, n2, confidence, ks.CriticalValue(n1, n2, confidence))
	}
}
