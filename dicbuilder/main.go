package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/msnoigrs/dictbreak/dictionary"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s -o file [-d description] [-u] file1 [file2 ...]

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		outputpath  string
		description string
		unweighted  bool
	)
	flag.StringVar(&outputpath, "o", "", "output to file")
	flag.StringVar(&description, "d", "", "comment")
	flag.BoolVar(&unweighted, "u", false, "ignore costs and build an unweighted dictionary")

	flag.Parse()

	if outputpath == "" || len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	dicbuilder := dictionary.NewDictionaryBuilder(!unweighted, os.Stderr)

	fmt.Fprint(os.Stderr, "reading the source file...")
	for _, wordspath := range flag.Args() {
		err := build(dicbuilder, wordspath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%s: %s\n", wordspath, err)
			os.Exit(1)
		}
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, " %d words\n", dicbuilder.Size())

	outputWriter, err := os.OpenFile(outputpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", outputpath, err)
		os.Exit(1)
	}
	defer outputWriter.Close()

	dh := dictionary.NewDictionaryHeader(0, time.Now().Unix(), description)
	_, err = dicbuilder.Write(dh, outputWriter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to write dictionary: %s\n", err)
		os.Exit(1)
	}
}

func build(dicbuilder *dictionary.DictionaryBuilder, wordspath string) error {
	wordsReader, err := os.OpenFile(wordspath, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer wordsReader.Close()

	return dicbuilder.ReadWords(wordsReader)
}
