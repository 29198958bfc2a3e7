package wetext

import "fmt"

// ConfigError reports an unsupported construction-time configuration,
// such as requesting a (language, operator) pair with no rule set.
type ConfigError struct {
	Lang   Language
	Op     Operator
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("wetext: unsupported configuration lang=%s op=%s: %s", e.Lang, e.Op, e.Reason)
}
