// Package wetext is a rule-based bidirectional text normalizer for
// Chinese, Japanese and English.
//
// It converts written form to spoken form (TN: "2024年1月15日" →
// "二零二四年一月十五日") and spoken form back to written form (ITN:
// "一百二十三" → "123") across numbers, dates, times, money and
// fractions. Grammars load at construction; Normalize never fails and
// copies through anything it cannot interpret, preserving whitespace
// exactly.
//
// A Normalizer is immutable after New and safe for concurrent use by
// multiple goroutines.
//
// Known limitations:
//   - English is supported for TN only; constructing an English ITN
//     normalizer returns a ConfigError. With automatic detection, ITN
//     input that detects as English falls back to the Chinese grammar.
//   - Values are bounded at sixteen decimal digits; longer digit runs
//     read digit-by-digit.
package wetext

import (
	"go.uber.org/zap"

	"github.com/SpenserCai/wetext/contractions"
	"github.com/SpenserCai/wetext/detect"
	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/resolver"
	"github.com/SpenserCai/wetext/script"
	"github.com/SpenserCai/wetext/tokenizer"
)

// Normalizer converts text between written and spoken form.
type Normalizer struct {
	cfg      config
	grammars map[Language]*grammar.Grammar
}

// New builds a Normalizer, compiling every grammar the configuration
// needs. Unsupported (language, operator) pairs fail here with a
// ConfigError, never later during Normalize.
func New(opts ...Option) (*Normalizer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	gopts := grammar.Options{Enable0To9: cfg.enable0To9}

	langs := []Language{cfg.lang}
	if cfg.lang == Auto {
		langs = []Language{Zh, Ja}
		if cfg.op == TN {
			// ITN input detected as English falls back to Chinese,
			// so Auto+ITN needs no English grammar.
			langs = append(langs, En)
		}
	}

	n := &Normalizer{cfg: cfg, grammars: make(map[Language]*grammar.Grammar, len(langs))}
	for _, l := range langs {
		g, err := grammar.Compile(l, cfg.op, gopts)
		if err != nil {
			return nil, &ConfigError{Lang: l, Op: cfg.op, Reason: err.Error()}
		}
		n.grammars[l] = g
	}
	cfg.logger.Debug("normalizer ready",
		zap.Stringer("lang", cfg.lang),
		zap.Stringer("operator", cfg.op),
		zap.Int("grammars", len(n.grammars)))
	return n, nil
}

// Normalize rewrites text. It is total: every input yields an output,
// and regions no rule matches are copied through verbatim. Calling it
// from multiple goroutines is safe.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := text
	if n.cfg.fixContractions {
		s = contractions.Expand(s)
	}
	if n.cfg.traditionalToSimple {
		s = script.TraditionalToSimplified(s)
	}
	if n.cfg.fullToHalf {
		s = script.FullToHalf(s)
	}

	lang := n.cfg.lang
	if lang == Auto {
		lang = detect.Lang(s)
		if n.cfg.op == ITN && lang == En {
			lang = Zh
		}
	}
	if g, ok := n.grammars[lang]; ok {
		spans := tokenizer.Segment(s, g)
		s = resolver.Rewrite(spans, g)
		n.cfg.logger.Debug("normalized",
			zap.Stringer("lang", lang),
			zap.Int("spans", len(spans)))
	}

	if n.cfg.removeErhua && lang == Zh {
		s = script.RemoveErhua(s)
	}
	if n.cfg.removeInterjections {
		s = script.RemoveInterjections(s)
	}
	if n.cfg.removePuncts {
		s = script.RemovePuncts(s)
	}
	return s
}

// Lang reports the configured language.
func (n *Normalizer) Lang() Language { return n.cfg.lang }

// Operator reports the configured direction.
func (n *Normalizer) Operator() Operator { return n.cfg.op }
