package wetext

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/internal/fixture"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

const goldenPath = "data/golden/reference.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("reference.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []fixture.Case
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	norms := map[string]*Normalizer{}
	for _, tc := range cases {
		name := fmt.Sprintf("%s/%s/%s", tc.Lang, tc.Operator, tc.Input)
		t.Run(name, func(t *testing.T) {
			lang, err := grammar.ParseLanguage(tc.Lang)
			if err != nil {
				t.Fatalf("parsing language: %v", err)
			}
			op, err := grammar.ParseOperator(tc.Operator)
			if err != nil {
				t.Fatalf("parsing operator: %v", err)
			}

			key := tc.Lang + "/" + tc.Operator
			n, cached := norms[key]
			if !cached {
				n, err = New(WithLang(lang), WithOperator(op))
				if tc.Err != "" {
					if err == nil || err.Error() != tc.Err {
						t.Fatalf("New(%s, %s) error = %v, want %q", tc.Lang, tc.Operator, err, tc.Err)
					}
					return
				}
				if err != nil {
					t.Fatalf("New(%s, %s): %v", tc.Lang, tc.Operator, err)
				}
				norms[key] = n
			}
			if tc.Err != "" {
				return
			}

			if got := n.Normalize(tc.Input); got != tc.Expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.Input, got, tc.Expected)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	cases := fixture.Seeds()
	for i := range cases {
		cases[i] = generateCase(cases[i])
	}
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling cases: %v", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(goldenPath, data, 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("wrote %d cases to %s", len(cases), goldenPath)
}

func generateCase(c fixture.Case) fixture.Case {
	lang, err := grammar.ParseLanguage(c.Lang)
	if err != nil {
		c.Err = err.Error()
		return c
	}
	op, err := grammar.ParseOperator(c.Operator)
	if err != nil {
		c.Err = err.Error()
		return c
	}
	n, err := New(WithLang(lang), WithOperator(op))
	if err != nil {
		c.Err = err.Error()
		return c
	}
	c.Expected = n.Normalize(c.Input)
	return c
}
