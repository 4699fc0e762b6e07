package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/euforicio/subword-go"
	"github.com/euforicio/subword-go/tokenizer"
)

func die(err error) { fmt.Fprintln(os.Stderr, err); os.Exit(1) }

func main() {
	if len(os.Args) < 2 {
		fmt.Println("subword-go [train|tokenize|decode|stats]")
		return
	}
	switch os.Args[1] {
	case "train":
		fs := flag.NewFlagSet("train", flag.ExitOnError)
		corpusPath := fs.String("corpus", "", "cleaned corpus file")
		out := fs.String("out", "subword.model", "model artifact path")
		_ = fs.Parse(os.Args[2:])
		res := train(*corpusPath)
		if err := subword.SaveModel(*out, res.Model); err != nil {
			die(err)
		}
		_ = json.NewEncoder(os.Stdout).Encode(res.Stats)
	case "stats":
		fs := flag.NewFlagSet("stats", flag.ExitOnError)
		corpusPath := fs.String("corpus", "", "cleaned corpus file")
		_ = fs.Parse(os.Args[2:])
		res := train(*corpusPath)
		_ = json.NewEncoder(os.Stdout).Encode(res.Stats)
	case "tokenize":
		fs := flag.NewFlagSet("tokenize", flag.ExitOnError)
		modelPath := fs.String("model", "subword.model", "model artifact path")
		_ = fs.Parse(os.Args[2:])
		model, err := subword.LoadModel(*modelPath)
		if err != nil {
			die(err)
		}
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			die(err)
		}
		tok := tokenizer.NewTokenizer(model)
		_ = json.NewEncoder(os.Stdout).Encode(tok.Tokenize(string(text)))
	case "decode":
		fs := flag.NewFlagSet("decode", flag.ExitOnError)
		modelPath := fs.String("model", "subword.model", "model artifact path")
		_ = fs.Parse(os.Args[2:])
		model, err := subword.LoadModel(*modelPath)
		if err != nil {
			die(err)
		}
		var ids []uint32
		if err := json.NewDecoder(os.Stdin).Decode(&ids); err != nil {
			die(err)
		}
		s, err := model.Decode(ids)
		if err != nil {
			die(err)
		}
		fmt.Println(s)
	default:
		fmt.Fprintln(os.Stderr, "unimplemented")
		os.Exit(2)
	}
}

func train(corpusPath string) *subword.Result {
	cfg, err := subword.ConfigFromEnv()
	if err != nil {
		die(err)
	}
	text, err := subword.ReadCorpus(corpusPath)
	if err != nil && !errors.Is(err, subword.ErrEmptyCorpus) {
		die(err)
	}
	if errors.Is(err, subword.ErrEmptyCorpus) {
		fmt.Fprintln(os.Stderr, "warning: empty corpus, model will hold only special tokens")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := subword.Train(ctx, text, cfg)
	if err != nil {
		die(err)
	}
	return res
}
