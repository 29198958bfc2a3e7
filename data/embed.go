// Package data embeds the static tables shipped with the module:
// currency naming, English contractions, interjection words and the
// traditional-to-simplified character map.
package data

import _ "embed"

//go:embed currency.yaml
var Currency []byte

//go:embed contractions.yaml
var Contractions []byte

//go:embed interjections.yaml
var Interjections []byte

//go:embed t2s.yaml
var TraditionalToSimplified []byte
