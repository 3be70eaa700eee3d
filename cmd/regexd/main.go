package main

import (
	"flag"
	"log"
	"net/http"

	"regexdfa/internal/config"
	"regexdfa/internal/regex"
	"regexdfa/internal/server"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	listen := flag.String("listen", "", "address to listen on (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	s := server.NewServer(regex.WithParenPolicy(cfg.ParenPolicy()))
	if err := s.Configure(s.Routes()); err != nil {
		log.Fatal(err)
	}
	log.Printf("regexd listening on %s (parens %s)", cfg.Listen, cfg.ParenPolicy())
	log.Fatal(http.ListenAndServe(cfg.Listen, s.Handler()))
}
