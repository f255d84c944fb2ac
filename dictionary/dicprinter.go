package dictionary

import (
	"fmt"
	"io"
	"time"
)

// PrintDictionary writes every word of the dictionary in source format, so
// the output can be fed back to the builder.
func PrintDictionary(filename string, output io.Writer) error {
	dic, err := OpenTrieDictionary(filename)
	if err != nil {
		return err
	}
	defer dic.Close()

	weighted := dic.Weighted()
	var werr error
	dic.Enumerate(func(word string, cost int) {
		if werr != nil {
			return
		}
		if weighted {
			_, werr = fmt.Fprintf(output, "%s\t%d\n", word, cost)
		} else {
			_, werr = fmt.Fprintln(output, word)
		}
	})
	return werr
}

func PrintHeader(filename string, output io.Writer) error {
	dic, err := OpenTrieDictionary(filename)
	if err != nil {
		return err
	}
	defer dic.Close()

	fmt.Fprintf(output, "filename: %s\n", filename)
	if dic.Weighted() {
		fmt.Fprintln(output, "type: weighted dictionary")
	} else {
		fmt.Fprintln(output, "type: unweighted dictionary")
	}

	ctime := time.Unix(dic.Header.CreateTime, 0)
	zone, _ := ctime.Zone()
	fmt.Fprintf(output, "createTime: %s[%s]\n", ctime.Format(time.RFC3339), zone)
	fmt.Fprintf(output, "description: %s\n", dic.Header.Description)
	fmt.Fprintf(output, "words: %d\n", dic.WordCount)

	return nil
}
