package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"regexdfa/internal/automaton"
	"regexdfa/internal/config"
	"regexdfa/internal/regex"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	pattern := flag.String("re", "", "regex (default: first line of the regex file)")
	strict := flag.Bool("strict", false, "reject unbalanced parentheses")
	outFile := flag.String("o", "", "file the automaton is saved to")
	compress := flag.Bool("zstd", false, "zstd-compress the saved automaton")
	dotFile := flag.String("dot", "", "write the DFA as Graphviz to this file and exit")
	minimize := flag.Bool("min", false, "minimize the DFA before using it")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [word ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *strict {
		cfg.StrictParens = true
	}
	if *outFile != "" {
		cfg.OutputFile = *outFile
	}
	if *compress {
		cfg.Compress = true
	}

	src := *pattern
	if src == "" {
		var fromFile bool
		src, fromFile, err = cfg.ReadRegex()
		if err != nil {
			log.Fatal(err)
		}
		if fromFile {
			fmt.Println("regex read from", cfg.RegexFile+":", src)
		} else {
			fmt.Println("no regex file, using", src)
		}
	}

	re, err := regex.Compile(src, regex.WithParenPolicy(cfg.ParenPolicy()))
	if err != nil {
		log.Fatalf("compile %q: %v", src, err)
	}
	dfa := re.DFA()
	if *minimize {
		dfa = dfa.Minimize()
	}
	if err := dfa.Validate(); err != nil {
		log.Fatalf("refusing invalid automaton: %v", err)
	}

	if *dotFile != "" {
		f, err := os.Create(*dotFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := automaton.ExportDOT(f, dfa); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("DOT written to %s\n", *dotFile)
		return
	}

	if words := flag.Args(); len(words) > 0 {
		for _, w := range words {
			fmt.Printf("%s\t%s\n", w, verdict(dfa.Accepts(w)))
		}
		return
	}

	m := &menu{cfg: cfg, re: re, dfa: dfa}
	if err := m.run(); err != nil {
		log.Fatal(err)
	}
}
