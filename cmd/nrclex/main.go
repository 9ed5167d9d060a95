// Command nrclex prints the emotional-affect profile of a text.
//
//	nrclex "What a wonderful, happy day."
//	echo "war and peace" | nrclex -format json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tsawler/affect"
)

type jsonProfile struct {
	Words             []string              `json:"words"`
	AffectList        []string              `json:"affectList"`
	AffectDict        map[string][]string   `json:"affectDict"`
	RawEmotionScores  map[string]int        `json:"rawEmotionScores"`
	AffectFrequencies map[string]float64    `json:"affectFrequencies"`
	TopEmotions       []affect.EmotionScore `json:"topEmotions"`
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("nrclex failed")
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("nrclex", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	envFile := flags.String("env", ".env", "dotenv file to load, if present")
	lexicon := flags.String("lexicon", "", "built-in lexicon name or path to a JSON lexicon")
	format := flags.String("format", "", "output format: text or json")
	logLevel := flags.String("log-level", "", "log level (debug, info, warn, error)")
	lemmatizer := flags.String("lemmatizer", "", "lemmatizer: morphy, stem or none")
	pretokenized := flags.Bool("tokens", false, "treat input as white-space separated tokens")
	if err := flags.Parse(args); err != nil {
		return err
	}

	conf, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if err := ApplyEnv(conf, *envFile); err != nil {
		return err
	}
	if *lexicon != "" {
		conf.Lexicon = *lexicon
	}
	if *format != "" {
		conf.Format = *format
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	if *lemmatizer != "" {
		conf.Lemmatizer = *lemmatizer
	}
	if err := ValidateAndDefaults(conf); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, _ := zerolog.ParseLevel(conf.LogLevel)
	logger := log.Logger.Level(level)

	lex, err := affect.OpenLexicon(conf.Lexicon)
	if err != nil {
		return err
	}
	tokenizer, err := affect.NewTextTokenizer(conf.docOpts(lex)...)
	if err != nil {
		return err
	}
	analyzer, err := affect.NewAnalyzer(lex, affect.UsingTokenizer(tokenizer), affect.WithLogger(logger))
	if err != nil {
		return err
	}

	text := strings.Join(flags.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		text = string(data)
	}

	var profile *affect.Profile
	if *pretokenized {
		profile = analyzer.LoadTokens(strings.Fields(text))
	} else {
		profile = analyzer.LoadText(text)
	}
	if !profile.HasMatches() {
		logger.Warn().Int("tokens", len(profile.Words())).Msg("no token matched the lexicon")
	}

	if conf.Format == "json" {
		return writeJSON(stdout, profile)
	}
	return writeText(stdout, profile)
}

func writeJSON(w io.Writer, p *affect.Profile) error {
	data, err := json.MarshalIndent(jsonProfile{
		Words:             p.Words(),
		AffectList:        p.AffectList(),
		AffectDict:        p.AffectDict(),
		RawEmotionScores:  p.RawEmotionScores(),
		AffectFrequencies: p.AffectFrequencies(),
		TopEmotions:       p.TopEmotions(),
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeText(w io.Writer, p *affect.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "matched words\t%d\n", len(p.AffectDict()))
	fmt.Fprintf(tw, "emotion occurrences\t%d\n", p.Total())
	top := make([]string, 0, len(p.TopEmotions()))
	for _, score := range p.TopEmotions() {
		top = append(top, score.Emotion)
	}
	fmt.Fprintf(tw, "top emotions\t%s\n", strings.Join(top, ", "))
	fmt.Fprintln(tw)
	for _, score := range p.Ranked() {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\n", score.Emotion, p.Score(score.Emotion), score.Frequency)
	}
	return tw.Flush()
}
