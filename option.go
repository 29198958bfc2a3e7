package wetext

import (
	"go.uber.org/zap"

	"github.com/SpenserCai/wetext/grammar"
)

// Language selects the grammar language. Auto detects per call.
type Language = grammar.Language

// Operator selects the normalization direction.
type Operator = grammar.Operator

const (
	Auto = grammar.Auto
	Zh   = grammar.Zh
	En   = grammar.En
	Ja   = grammar.Ja

	TN  = grammar.TN
	ITN = grammar.ITN
)

type config struct {
	lang                Language
	op                  Operator
	fixContractions     bool
	traditionalToSimple bool
	fullToHalf          bool
	removeInterjections bool
	removePuncts        bool
	removeErhua         bool
	enable0To9          bool
	logger              *zap.Logger
}

func defaultConfig() config {
	return config{lang: Auto, op: TN, logger: zap.NewNop()}
}

// Option configures a Normalizer at construction time.
type Option func(*config)

// WithLang fixes the input language instead of detecting it per call.
func WithLang(l Language) Option {
	return func(c *config) { c.lang = l }
}

// WithOperator selects written→spoken (TN) or spoken→written (ITN).
func WithOperator(o Operator) Option {
	return func(c *config) { c.op = o }
}

// WithFixContractions expands English contractions before normalizing.
func WithFixContractions(on bool) Option {
	return func(c *config) { c.fixContractions = on }
}

// WithTraditionalToSimple folds traditional Chinese characters to
// simplified before normalizing.
func WithTraditionalToSimple(on bool) Option {
	return func(c *config) { c.traditionalToSimple = on }
}

// WithFullToHalf folds fullwidth characters to halfwidth before
// normalizing.
func WithFullToHalf(on bool) Option {
	return func(c *config) { c.fullToHalf = on }
}

// WithRemoveInterjections strips filler words from the output.
func WithRemoveInterjections(on bool) Option {
	return func(c *config) { c.removeInterjections = on }
}

// WithRemovePuncts strips punctuation and symbols from the output.
func WithRemovePuncts(on bool) Option {
	return func(c *config) { c.removePuncts = on }
}

// WithRemoveErhua drops the erhua suffix (哪儿 → 哪) from Chinese
// output.
func WithRemoveErhua(on bool) Option {
	return func(c *config) { c.removeErhua = on }
}

// WithEnable0To9 lets ITN convert isolated single-digit words.
func WithEnable0To9(on bool) Option {
	return func(c *config) { c.enable0To9 = on }
}

// WithLogger attaches a logger; construction and per-call diagnostics
// are logged at debug level. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
