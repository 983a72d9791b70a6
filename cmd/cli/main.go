package main

import (
	"ElectionAssistant/pkg/log"
	"ElectionAssistant/pkg/nlp"
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const prompt = "> "

func main() {
	datasetPath := pflag.StringP("dataset", "d", "", "path to a party dataset JSON file (embedded dataset when empty)")
	logLevel := pflag.StringP("log", "l", "warn", "log level")
	analyze := pflag.BoolP("analyze", "a", false, "print the analysis of each message")
	pflag.Parse()

	_ = godotenv.Load()
	log.SetLevel(*logLevel)

	ds, err := loadDataset(*datasetPath)
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "failed to load party dataset")
	}

	engine := nlp.NewEngine(ds)
	log.Info(log.Fields{"parties": len(ds.Parties)}, "election assistant ready")

	if err := repl(engine, os.Stdin, os.Stdout, *analyze); err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "input error")
	}
}

func loadDataset(path string) (*nlp.Dataset, error) {
	if path == "" {
		return nlp.DefaultDataset()
	}
	return nlp.LoadDatasetFile(path)
}

func repl(engine nlp.INLPEngine, in io.Reader, out io.Writer, analyze bool) error {
	fmt.Fprintln(out, "Hello! Ask me anything about the election. Type \"exit\" to quit.")

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "exit" || line == "quit":
			return nil
		default:
			result := engine.Analyze(line)
			if analyze {
				printAnalysis(out, result)
			}
			fmt.Fprintln(out, result.Response)
		}
		fmt.Fprint(out, prompt)
	}

	return scanner.Err()
}

func printAnalysis(out io.Writer, result nlp.Analysis) {
	fmt.Fprintf(out, "  tokens:  %s\n", strings.Join(result.Tokens, " "))
	fmt.Fprintf(out, "  related: %t\n", result.Related)
	fmt.Fprintf(out, "  intent:  %s\n", result.Intent)
	if result.Entity != nil {
		fmt.Fprintf(out, "  entity:  %s (%s)\n", result.Entity.Party.ShortName, result.Entity.Type)
	} else {
		fmt.Fprintln(out, "  entity:  none")
	}
}
