package grammar

// Canonical field orders for assembled categories. Spoken Chinese and
// Japanese put the denominator before the numerator (四分之三 reads
// "three out of four parts"), while the written form is numerator-first;
// renderers consult these tables instead of hard-coding the direction.

var fractionOrder = map[Operator][]string{
	TN:  {"denominator", "numerator"},
	ITN: {"sign", "numerator", "denominator"},
}

var dateOrder = []string{"year", "month", "day"}

var timeOrder = map[Operator][]string{
	TN:  {"noon", "hour", "minute", "second"},
	ITN: {"noon", "hour", "minute", "second"},
}

var moneyOrder = map[Operator][]string{
	TN:  {"value", "currency"},
	ITN: {"value", "currency"},
}

// denominatorFirst reports whether the fraction denominator leads for the
// direction.
func denominatorFirst(op Operator) bool {
	return fractionOrder[op][0] == "denominator"
}

// joinParts concatenates the rendered parts present in the map in
// canonical field order. Part values carry their own unit markers.
func joinParts(order []string, parts map[string]string) string {
	out := ""
	for _, f := range order {
		out += parts[f]
	}
	return out
}
