package tokenizer

import (
	"testing"

	"github.com/SpenserCai/wetext/grammar"
)

func TestSegmentEn(t *testing.T) {
	g := mustGrammar(t, grammar.En, grammar.TN)
	tests := []struct {
		text string
		want []struct {
			text string
			kind Kind
		}
	}{
		{
			"The meeting is at 3:30 PM",
			[]struct {
				text string
				kind Kind
			}{
				{"The meeting is at ", Plain},
				{"3:30 PM", Time},
			},
		},
		{
			"January 15, 2024",
			[]struct {
				text string
				kind Kind
			}{
				{"January 15, 2024", Date},
			},
		},
		{
			"Pay $10.50 now",
			[]struct {
				text string
				kind Kind
			}{
				{"Pay ", Plain},
				{"$10.50", Money},
				{" now", Plain},
			},
		},
		{
			"It is 7:00 a.m. here",
			[]struct {
				text string
				kind Kind
			}{
				{"It is ", Plain},
				{"7:00 a.m.", Time},
				{" here", Plain},
			},
		},
		{
			"the 21st of May",
			[]struct {
				text string
				kind Kind
			}{
				{"the ", Plain},
				{"21st", Numeric},
				{" of May", Plain},
			},
		},
		{
			"2024-01-15",
			[]struct {
				text string
				kind Kind
			}{
				{"2024-01-15", Date},
			},
		},
		{
			"up 50% and 3/4 done",
			[]struct {
				text string
				kind Kind
			}{
				{"up ", Plain},
				{"50%", Fraction},
				{" and ", Plain},
				{"3/4", Fraction},
				{" done", Plain},
			},
		},
		{
			"at -5 degrees",
			[]struct {
				text string
				kind Kind
			}{
				{"at ", Plain},
				{"-5", Numeric},
				{" degrees", Plain},
			},
		},
	}
	for _, tt := range tests {
		spans := Segment(tt.text, g)
		checkCoverage(t, tt.text, spans)
		if len(spans) != len(tt.want) {
			t.Errorf("Segment(%q) = %v, want %d spans", tt.text, spans, len(tt.want))
			continue
		}
		for i, w := range tt.want {
			if spans[i].Text != w.text || spans[i].Kind != w.kind {
				t.Errorf("Segment(%q) span %d = (%q, %s), want (%q, %s)",
					tt.text, i, spans[i].Text, spans[i].Kind, w.text, w.kind)
			}
		}
	}
}

// A hyphen glued to a preceding word is a hyphen, not a minus sign.
func TestSegmentEnHyphen(t *testing.T) {
	g := mustGrammar(t, grammar.En, grammar.TN)
	text := "well-known"
	for _, sp := range Segment(text, g) {
		if sp.Kind != Plain {
			t.Errorf("Segment(%q) produced candidate span %q", text, sp.Text)
		}
	}
}
