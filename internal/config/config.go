package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	"regexdfa/internal/regex"
)

// FallbackRegex is compiled when no regex file can be read.
const FallbackRegex = "a(a|b)*"

// Config holds the settings shared by regexdfa and regexd.
type Config struct {
	// RegexFile holds the pattern on its first line.
	RegexFile    string `json:"regex_file"`
	DefaultRegex string `json:"default_regex"`
	// OutputFile receives the saved automaton. A ".zst" suffix or
	// Compress enables zstd compression.
	OutputFile   string `json:"output_file"`
	Compress     bool   `json:"compress"`
	StrictParens bool   `json:"strict_parens"`
	Listen       string `json:"listen"`
}

func Default() Config {
	return Config{
		RegexFile:    "regexInput.txt",
		DefaultRegex: FallbackRegex,
		OutputFile:   "out.txt",
		Listen:       ":8080",
	}
}

// Load reads a YAML file on top of Default. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultRegex) == "" {
		return errors.New("config: default_regex is empty")
	}
	if c.OutputFile == "" {
		return errors.New("config: output_file is empty")
	}
	if c.Listen == "" {
		return errors.New("config: listen is empty")
	}
	return nil
}

// ParenPolicy maps StrictParens to the parser option.
func (c Config) ParenPolicy() regex.ParenPolicy {
	if c.StrictParens {
		return regex.Strict
	}
	return regex.Lenient
}

// ReadRegex returns the first line of RegexFile. If the file does not exist
// it returns DefaultRegex and fromFile is false.
func (c Config) ReadRegex() (pattern string, fromFile bool, err error) {
	if c.RegexFile == "" {
		return c.DefaultRegex, false, nil
	}
	f, err := os.Open(c.RegexFile)
	if errors.Is(err, fs.ErrNotExist) {
		return c.DefaultRegex, false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if sc.Scan() {
		return strings.TrimRight(sc.Text(), "\r"), true, nil
	}
	if err := sc.Err(); err != nil {
		return "", false, err
	}
	return c.DefaultRegex, false, nil
}
