// Command wetext normalizes text between written and spoken form.
//
// Usage:
//
//	wetext -lang zh -operator tn "今天是2024年1月15日"
//	echo "一百二十三" | wetext -operator itn
//
// Settings resolve in order: flag > WETEXT_* environment variable >
// config file (-config, YAML) > default.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	wetext "github.com/SpenserCai/wetext"
	"github.com/SpenserCai/wetext/grammar"
)

func main() {
	cfgFile := flag.String("config", "", "optional YAML config file")
	flag.String("lang", "auto", "input language: auto, zh, en, ja")
	flag.String("operator", "tn", "direction: tn (written→spoken) or itn (spoken→written)")
	flag.Bool("fix-contractions", false, "expand English contractions first")
	flag.Bool("traditional-to-simple", false, "fold traditional Chinese to simplified")
	flag.Bool("full-to-half", false, "fold fullwidth characters to halfwidth")
	flag.Bool("remove-interjections", false, "strip filler words")
	flag.Bool("remove-puncts", false, "strip punctuation")
	flag.Bool("remove-erhua", false, "drop the erhua suffix")
	flag.Bool("enable-0-to-9", false, "convert isolated single-digit words in itn")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	v := viper.New()
	flag.VisitAll(func(f *flag.Flag) {
		if f.Name != "config" && f.Name != "v" {
			v.SetDefault(f.Name, f.DefValue)
		}
	})
	v.SetEnvPrefix("WETEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if *cfgFile != "" {
		v.SetConfigFile(*cfgFile)
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "wetext: read config: %v\n", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "config" && f.Name != "v" {
			v.Set(f.Name, f.Value.String())
		}
	})

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	lang, err := grammar.ParseLanguage(v.GetString("lang"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wetext: %v\n", err)
		os.Exit(1)
	}
	op, err := grammar.ParseOperator(v.GetString("operator"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wetext: %v\n", err)
		os.Exit(1)
	}

	n, err := wetext.New(
		wetext.WithLang(lang),
		wetext.WithOperator(op),
		wetext.WithFixContractions(v.GetBool("fix-contractions")),
		wetext.WithTraditionalToSimple(v.GetBool("traditional-to-simple")),
		wetext.WithFullToHalf(v.GetBool("full-to-half")),
		wetext.WithRemoveInterjections(v.GetBool("remove-interjections")),
		wetext.WithRemovePuncts(v.GetBool("remove-puncts")),
		wetext.WithRemoveErhua(v.GetBool("remove-erhua")),
		wetext.WithEnable0To9(v.GetBool("enable-0-to-9")),
		wetext.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wetext: %v\n", err)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		fmt.Println(n.Normalize(strings.Join(args, " ")))
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	for sc.Scan() {
		fmt.Println(n.Normalize(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "wetext: read stdin: %v\n", err)
		os.Exit(1)
	}
}
