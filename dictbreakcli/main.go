package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/msnoigrs/dictbreak"
	"github.com/msnoigrs/dictbreak/data"
	"golang.org/x/text/language"
)

var (
	plugins = make(map[string]reflect.Type)

	pkgstr                   = "github.com/msnoigrs/dictbreak"
	thaiBreakEnginePlugin    = pkgstr + ".ThaiBreakEnginePlugin"
	laoBreakEnginePlugin     = pkgstr + ".LaoBreakEnginePlugin"
	khmerBreakEnginePlugin   = pkgstr + ".KhmerBreakEnginePlugin"
	burmeseBreakEnginePlugin = pkgstr + ".BurmeseBreakEnginePlugin"
	cjkBreakEnginePlugin     = pkgstr + ".CjkBreakEnginePlugin"
	koreanBreakEnginePlugin  = pkgstr + ".KoreanBreakEnginePlugin"
)

func init() {
	register(dictbreak.ThaiBreakEnginePlugin{})
	register(dictbreak.LaoBreakEnginePlugin{})
	register(dictbreak.KhmerBreakEnginePlugin{})
	register(dictbreak.BurmeseBreakEnginePlugin{})
	register(dictbreak.CjkBreakEnginePlugin{})
	register(dictbreak.KoreanBreakEnginePlugin{})
}

func register(x interface{}) {
	t := reflect.TypeOf(x)
	n := t.PkgPath() + "." + t.Name()
	plugins[n] = t
}

func newPlugin(name string) (interface{}, bool) {
	t, ok := plugins[name]
	if !ok {
		return nil, false
	}
	v := reflect.New(t)
	return v.Interface(), true
}

func makeBreakEnginePlugin(k string) dictbreak.BreakEnginePlugin {
	var name string
	switch k {
	case "ThaiBreakEngine", thaiBreakEnginePlugin:
		name = thaiBreakEnginePlugin
	case "LaoBreakEngine", laoBreakEnginePlugin:
		name = laoBreakEnginePlugin
	case "KhmerBreakEngine", khmerBreakEnginePlugin:
		name = khmerBreakEnginePlugin
	case "BurmeseBreakEngine", burmeseBreakEnginePlugin:
		name = burmeseBreakEnginePlugin
	case "CjkBreakEngine", cjkBreakEnginePlugin:
		name = cjkBreakEnginePlugin
	case "KoreanBreakEngine", koreanBreakEnginePlugin:
		name = koreanBreakEnginePlugin
	default:
		return nil
	}
	plugin, ok := newPlugin(name)
	if !ok {
		return nil
	}
	rplugin, ok := plugin.(dictbreak.BreakEnginePlugin)
	if !ok {
		return nil
	}
	return rplugin
}

type normalizer struct {
	r        io.Reader
	lastChar byte
}

func newNormalizer(r io.Reader) *normalizer {
	return &normalizer{r: r}
}

func (norm *normalizer) Read(p []byte) (n int, err error) {
	n, err = norm.r.Read(p)
	for i := 0; i < n; i++ {
		switch {
		case p[i] == '\n' && norm.lastChar == '\r':
			copy(p[i:n], p[i+1:n])
			norm.lastChar = p[i]
			n--
			i--
		case p[i] == '\r':
			norm.lastChar = p[i]
			p[i] = '\n'
		default:
			norm.lastChar = p[i]
		}
	}
	return
}

type lineScanner struct {
	r         *bufio.Reader
	line      []byte
	rawBuffer []byte
	err       error
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{r: bufio.NewReader(newNormalizer(r))}
}

func (s *lineScanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

func (s *lineScanner) Scan() bool {
	s.line, s.err = s.r.ReadSlice('\n')
	if s.err == bufio.ErrBufferFull {
		s.rawBuffer = append(s.rawBuffer[:0], s.line...)
		for s.err == bufio.ErrBufferFull {
			s.line, s.err = s.r.ReadSlice('\n')
			s.rawBuffer = append(s.rawBuffer, s.line...)
		}
		s.line = s.rawBuffer
	}
	if s.err == io.EOF {
		s.err = nil
		return len(s.line) > 0
	}
	if s.err != nil {
		return false
	}
	s.line = s.line[:len(s.line)-1]
	return true
}

func (s *lineScanner) Text() string {
	return string(s.line)
}

func parseKind(s string) (dictbreak.BreakKind, error) {
	switch strings.ToLower(s) {
	case "c", "character", "grapheme":
		return dictbreak.Character, nil
	case "w", "word":
		return dictbreak.Word, nil
	case "l", "line":
		return dictbreak.Line, nil
	case "s", "sentence":
		return dictbreak.Sentence, nil
	case "t", "title":
		return dictbreak.Title, nil
	}
	return 0, fmt.Errorf("unknown break kind: %s", s)
}

func runFromReader(it dictbreak.BreakIterator, input io.Reader, output io.Writer, printOffsets bool, ignoreError bool) error {
	s := newLineScanner(input)
	for s.Scan() {
		err := run(it, s.Text(), output, printOffsets)
		if err != nil {
			if ignoreError {
				fmt.Fprintln(os.Stderr, err)
			} else {
				return err
			}
		}
	}
	return s.Err()
}

func run(it dictbreak.BreakIterator, text string, output io.Writer, printOffsets bool) error {
	if err := it.SetText(text); err != nil {
		return err
	}
	if printOffsets {
		for i, b := range it.Boundaries() {
			if i > 0 {
				fmt.Fprint(output, " ")
			}
			fmt.Fprint(output, b)
		}
		fmt.Fprintln(output)
		return nil
	}
	start := it.First()
	for end := it.Next(); end != dictbreak.Done; end = it.Next() {
		if start > 0 {
			fmt.Fprint(output, "|")
		}
		fmt.Fprint(output, text[start:end])
		start = end
	}
	fmt.Fprintln(output)
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s [-r file] [-k kind] [-l locale] [-o file] [-b] [file ...]

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		settingfile  string
		kindstr      string
		localestr    string
		outputfile   string
		printoffsets bool
		ignoreerr    bool
		debugmode    bool
	)
	flag.StringVar(&settingfile, "r", "", "read settings from file")
	flag.StringVar(&kindstr, "k", "word", "kind of boundaries: character, word, line, sentence or title")
	flag.StringVar(&localestr, "l", "und", "BCP 47 locale, e.g. lo, ja-u-lw-phrase, en-u-ss-standard")
	flag.StringVar(&outputfile, "o", "", "output to file")
	flag.BoolVar(&printoffsets, "b", false, "print byte offsets of boundaries")
	flag.BoolVar(&ignoreerr, "f", false, "ignore error")
	flag.BoolVar(&debugmode, "d", false, "debug mode")

	flag.Parse()

	kind, err := parseKind(kindstr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	locale, err := language.Parse(localestr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", localestr, err)
		os.Exit(1)
	}

	ex, err := os.Executable()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	curPath := filepath.Dir(ex)

	var output io.Writer
	if outputfile != "" {
		if !filepath.IsAbs(outputfile) {
			outputfile, err = filepath.Abs(outputfile)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		outputfd, err := os.OpenFile(outputfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", outputfile, err)
			os.Exit(1)
		}
		defer outputfd.Close()
		bufiooutput := bufio.NewWriter(outputfd)
		defer bufiooutput.Flush()
		output = bufiooutput
	} else {
		output = os.Stdout
	}

	settings, pluginmaker, err := parseSettings(curPath, settingfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to parse settings: %s\n", err)
		os.Exit(1)
	}

	breakEnginePlugins, err := pluginmaker.GetBreakEnginePluginArray(makeBreakEnginePlugin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to create any BreakEnginePlugin: %s\n", err)
		os.Exit(1)
	}

	breaker, err := dictbreak.NewBreaker(settings.GetBaseConfig(), breakEnginePlugins)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer breaker.Close()

	if debugmode {
		breaker.SetDumpOutput(output)
	}

	it, err := breaker.NewBreakIterator(locale, kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(flag.Args()) > 0 {
		for _, arg := range flag.Args() {
			input, err := os.OpenFile(arg, os.O_RDONLY, 0644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", arg, err)
				os.Exit(1)
			}
			err = runFromReader(it, input, output, printoffsets, ignoreerr)
			input.Close()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	} else {
		err = runFromReader(it, os.Stdin, output, printoffsets, ignoreerr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func parseSettings(curPath string, settingfile string) (dictbreak.Settings, dictbreak.PluginMaker, error) {
	settings := dictbreak.NewSettingsJSON()

	var settingsreader io.Reader

	if settingfile != "" {
		var err error
		if !filepath.IsAbs(settingfile) {
			settingfile, err = filepath.Abs(settingfile)
			if err != nil {
				return nil, nil, err
			}
		}
		settingsfd, err := os.OpenFile(settingfile, os.O_RDONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		defer settingsfd.Close()
		settingsreader = settingsfd
	} else {
		settingsf, err := data.Assets.Open("dictbreak.json")
		if err != nil {
			return nil, nil, err
		}
		defer settingsf.Close()
		settingsreader = settingsf
	}

	err := settings.ParseSettingsJSON(curPath, settingsreader)
	if err != nil {
		return nil, nil, err
	}
	return settings, settings, nil
}
