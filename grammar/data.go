package grammar

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/SpenserCai/wetext/data"
)

// currencySet is the per-language currency naming table from
// data/currency.yaml.
type currencySet struct {
	// Symbols maps a written sign ("$") to its spoken unit word.
	Symbols map[string]string `yaml:"symbols"`
	// Units lists unit words accepted after an amount, longest first.
	Units []string `yaml:"units"`
	// Plurals, Subunits and SubunitPlurals are English-only.
	Plurals        map[string]string `yaml:"plurals"`
	Subunits       map[string]string `yaml:"subunits"`
	SubunitPlurals map[string]string `yaml:"subunit_plurals"`
}

var (
	currencyOnce sync.Once
	currencyTab  map[string]currencySet
	currencyErr  error
)

func loadCurrency() {
	tab := map[string]currencySet{}
	if err := yaml.Unmarshal(data.Currency, &tab); err != nil {
		currencyErr = fmt.Errorf("grammar: loading currency table: %w", err)
		return
	}
	for lang, set := range tab {
		// Longer unit words must be tried before their suffixes
		// (人民币 before 元).
		sort.SliceStable(set.Units, func(i, j int) bool {
			return len([]rune(set.Units[i])) > len([]rune(set.Units[j]))
		})
		tab[lang] = set
	}
	currencyTab = tab
}

// currencyFor returns the currency table for a language. The table ships
// with the module, so a load failure is a build defect; Compile surfaces
// it as an error.
func currencyFor(lang Language) (currencySet, error) {
	currencyOnce.Do(loadCurrency)
	if currencyErr != nil {
		return currencySet{}, currencyErr
	}
	set, ok := currencyTab[lang.String()]
	if !ok {
		return currencySet{}, fmt.Errorf("grammar: no currency table for language %s", lang)
	}
	return set, nil
}

// symbolAlts returns the written signs for a language, longest first, for
// use as word-element alternatives.
func (s currencySet) symbolAlts() []string {
	alts := make([]string, 0, len(s.Symbols))
	for sym := range s.Symbols {
		alts = append(alts, sym)
	}
	sort.Slice(alts, func(i, j int) bool {
		if len(alts[i]) != len(alts[j]) {
			return len(alts[i]) > len(alts[j])
		}
		return alts[i] < alts[j]
	})
	return alts
}
