// Command fixturegen regenerates the golden fixture file
// data/golden/reference.json from the seed case list. Run it after a
// deliberate behavior change, then review the diff:
//
//	go run ./cmd/fixturegen
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	wetext "github.com/SpenserCai/wetext"
	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/internal/fixture"
)

func main() {
	output := flag.String("output", "data/golden/reference.json", "golden file path")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixturegen: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cases := fixture.Seeds()
	for i := range cases {
		cases[i] = generate(cases[i])
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		logger.Fatal("marshal cases", zap.Error(err))
	}
	data = append(data, '\n')
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		logger.Fatal("write golden file", zap.Error(err))
	}
	logger.Info("golden file written",
		zap.String("path", *output),
		zap.Int("cases", len(cases)))
}

func generate(c fixture.Case) fixture.Case {
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
	n, err := wetext.New(wetext.WithLang(lang), wetext.WithOperator(op))
	if err != nil {
		c.Err = err.Error()
		return c
	}
	c.Expected = n.Normalize(c.Input)
	return c
}
