// Package fixture lists the canonical end-to-end cases shared by the
// golden test and the fixturegen command. The golden file
// data/golden/reference.json stores these cases with their expected
// outputs; regenerate it with:
//
//	go run ./cmd/fixturegen
package fixture

// Case is one golden normalization case. Either Expected or Err is set
// after generation; seeds carry only Input, Lang and Operator.
type Case struct {
	Input    string `json:"input"`
	Lang     string `json:"lang"`
	Operator string `json:"operator"`
	Expected string `json:"expected_output,omitempty"`
	Err      string `json:"error,omitempty"`
}

// Seeds returns the case inputs in a stable order.
func Seeds() []Case {
	return []Case{
		// Chinese written → spoken.
		{Input: "今天是2024年1月15日", Lang: "zh", Operator: "tn"},
		{Input: "现在是15:30", Lang: "zh", Operator: "tn"},
		{Input: "价格是100元", Lang: "zh", Operator: "tn"},
		{Input: "比例是3/4", Lang: "zh", Operator: "tn"},
		{Input: "温度是1.5度", Lang: "zh", Operator: "tn"},
		{Input: "电话是123", Lang: "zh", Operator: "tn"},
		{Input: "增长了50%", Lang: "zh", Operator: "tn"},
		{Input: "下午3点30分开会", Lang: "zh", Operator: "tn"},
		{Input: "付了1元5角", Lang: "zh", Operator: "tn"},
		{Input: "第1名", Lang: "zh", Operator: "tn"},
		{Input: "$10.5", Lang: "zh", Operator: "tn"},
		{Input: "2024/1/15", Lang: "zh", Operator: "tn"},
		{Input: "你好，世界", Lang: "zh", Operator: "tn"},
		{Input: "", Lang: "zh", Operator: "tn"},
		{Input: "  100元  ", Lang: "zh", Operator: "tn"},

		// Chinese spoken → written.
		{Input: "一百二十三", Lang: "zh", Operator: "itn"},
		{Input: "二零二四年一月十五日", Lang: "zh", Operator: "itn"},
		{Input: "下午三点三十分", Lang: "zh", Operator: "itn"},
		{Input: "一百元", Lang: "zh", Operator: "itn"},
		{Input: "四分之三", Lang: "zh", Operator: "itn"},
		{Input: "一点五", Lang: "zh", Operator: "itn"},
		{Input: "百分之五十", Lang: "zh", Operator: "itn"},
		{Input: "负五", Lang: "zh", Operator: "itn"},
		{Input: "幺二三", Lang: "zh", Operator: "itn"},
		{Input: "十二万", Lang: "zh", Operator: "itn"},
		{Input: "第一百", Lang: "zh", Operator: "itn"},
		{Input: "三点半", Lang: "zh", Operator: "itn"},
		{Input: "两百块", Lang: "zh", Operator: "itn"},
		{Input: "我有一个苹果", Lang: "zh", Operator: "itn"},

		// Japanese written → spoken.
		{Input: "2024年1月15日", Lang: "ja", Operator: "tn"},
		{Input: "100円", Lang: "ja", Operator: "tn"},
		{Input: "3:30", Lang: "ja", Operator: "tn"},
		{Input: "50%", Lang: "ja", Operator: "tn"},
		{Input: "3/4", Lang: "ja", Operator: "tn"},
		{Input: "-5", Lang: "ja", Operator: "tn"},

		// Japanese spoken → written.
		{Input: "百二十三", Lang: "ja", Operator: "itn"},
		{Input: "二〇二四年", Lang: "ja", Operator: "itn"},
		{Input: "三時三十分", Lang: "ja", Operator: "itn"},
		{Input: "百円", Lang: "ja", Operator: "itn"},
		{Input: "四分の三", Lang: "ja", Operator: "itn"},
		{Input: "五十パーセント", Lang: "ja", Operator: "itn"},

		// English written → spoken.
		{Input: "The meeting is at 3:30 PM", Lang: "en", Operator: "tn"},
		{Input: "January 15, 2024", Lang: "en", Operator: "tn"},
		{Input: "$10.50", Lang: "en", Operator: "tn"},
		{Input: "123", Lang: "en", Operator: "tn"},
		{Input: "3.14", Lang: "en", Operator: "tn"},
		{Input: "50%", Lang: "en", Operator: "tn"},
		{Input: "3/4", Lang: "en", Operator: "tn"},
		{Input: "21st", Lang: "en", Operator: "tn"},
		{Input: "2024-01-15", Lang: "en", Operator: "tn"},
		{Input: "100 dollars", Lang: "en", Operator: "tn"},

		// English spoken → written is not supported.
		{Input: "one hundred", Lang: "en", Operator: "itn"},

		// Automatic detection.
		{Input: "价格是100元", Lang: "auto", Operator: "tn"},
		{Input: "料金は100円です", Lang: "auto", Operator: "tn"},
		{Input: "one hundred", Lang: "auto", Operator: "itn"},
	}
}
