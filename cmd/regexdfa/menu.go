package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"regexdfa/internal/automaton"
	"regexdfa/internal/config"
	"regexdfa/internal/dump"
	"regexdfa/internal/regex"
)

type menu struct {
	cfg config.Config
	re  *regex.Regex
	dfa *automaton.DFA
}

var menuItems = []string{
	"Postfix notation",
	"Syntax tree",
	"Print and save automaton",
	"Check word",
	"Print epsilon-NFA",
	"Exit",
}

var (
	accepted = promptui.Styler(promptui.FGGreen)
	rejected = promptui.Styler(promptui.FGRed)
	heading  = promptui.Styler(promptui.FGCyan)
)

func verdict(ok bool) string {
	if ok {
		return accepted("ACCEPTED")
	}
	return rejected("REJECTED")
}

func (m *menu) run() error {
	for {
		sel := promptui.Select{
			Label: "DFA for " + m.re.Pattern(),
			Items: menuItems,
			Size:  len(menuItems),
		}
		idx, _, err := sel.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch idx {
		case 0:
			fmt.Println(heading("Postfix:"), m.re.Postfix())
		case 1:
			fmt.Println(heading("--- Syntax tree ---"))
			regex.Render(os.Stdout, m.re.Tree())
		case 2:
			if err := m.printAndSave(); err != nil {
				fmt.Println(rejected("save failed:"), err)
			}
		case 3:
			if err := m.checkWord(); err != nil {
				return err
			}
		case 4:
			if err := m.re.NFA().PrintTable(os.Stdout); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (m *menu) printAndSave() error {
	fmt.Println(heading("--- DFA ---"))
	if err := m.dfa.PrintTable(os.Stdout); err != nil {
		return err
	}
	id, err := dump.Save(m.cfg.OutputFile, m.cfg.Compress, m.re, m.dfa)
	if err != nil {
		return err
	}
	fmt.Printf("automaton saved to %s (run %s)\n", m.cfg.OutputFile, id)
	return nil
}

func (m *menu) checkWord() error {
	alphabet := map[rune]bool{}
	for _, c := range m.dfa.Alphabet() {
		alphabet[c] = true
	}
	prompt := promptui.Prompt{
		Label: "Word to check",
		Validate: func(s string) error {
			if strings.TrimSpace(s) != s {
				return errors.New("no surrounding spaces")
			}
			return nil
		},
	}
	word, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, c := range word {
		if !alphabet[c] {
			fmt.Println(promptui.Styler(promptui.FGYellow)(fmt.Sprintf("symbol %q is not in the alphabet", c)))
			break
		}
	}
	fmt.Printf("%q is %s\n", word, verdict(m.dfa.Accepts(word)))
	return nil
}
