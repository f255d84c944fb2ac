package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/msnoigrs/dictbreak/dictionary"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s file
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	output := bufio.NewWriter(os.Stdout)
	err := dictionary.PrintDictionary(flag.Arg(0), output)
	if ferr := output.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
