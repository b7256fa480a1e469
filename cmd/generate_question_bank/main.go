// Command generate_question_bank asks the configured generation provider
// for one question per syllabus topic and writes the result as a YAML
// "questions:" block that can replace the canned question bank.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"question-paper/internal/adapter/quizgen"
	"question-paper/internal/config"
	"question-paper/internal/domain"
	"question-paper/internal/generation"
	"question-paper/internal/logger"
	"question-paper/internal/syllabus"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type options struct {
	output      string
	concurrency int
	unit        string
}

type bankDocument struct {
	Questions map[string]string `yaml:"questions"`
}

func main() {
	var opts options
	pflag.StringVarP(&opts.output, "output", "o", "", "write the question bank to this file instead of stdout")
	pflag.IntVarP(&opts.concurrency, "concurrency", "c", 2, "maximum parallel generation requests")
	pflag.StringVarP(&opts.unit, "unit", "u", "", "only generate questions for this unit")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()

	if err := run(cfg, opts, log); err != nil {
		log.Error("Question bank generation failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg *config.Config, opts options, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	topics := selectTopics(syllabus.Default().Units(), opts.unit)
	if len(topics) == 0 {
		return fmt.Errorf("no topics to generate questions for in unit %q", opts.unit)
	}

	provider := quizgen.NewFromConfig(cfg.Generation, log)
	log.Info("Question bank generation starting", zap.Int("topics", len(topics)), zap.Int("concurrency", opts.concurrency))

	result, err := generation.GenerateBank(ctx, provider, topics, opts.concurrency, log)
	if err != nil {
		return fmt.Errorf("generate question bank: %w", err)
	}
	if err := writeBank(opts.output, os.Stdout, result.Questions); err != nil {
		return err
	}

	log.Info("Question bank generation completed",
		zap.Int("generated", len(result.Questions)),
		zap.Strings("failed", result.Failed),
	)
	return nil
}

// writeBank writes the YAML bank to path, or to stdout when path is empty.
// The file is closed before returning so a failed flush is reported.
func writeBank(path string, stdout io.Writer, questions map[string]string) error {
	if path == "" {
		return encodeBank(stdout, questions)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}
	if err := encodeBank(f, questions); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file %s: %w", path, err)
	}
	return nil
}

func encodeBank(w io.Writer, questions map[string]string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bankDocument{Questions: questions}); err != nil {
		return fmt.Errorf("encode question bank: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode question bank: %w", err)
	}
	return nil
}

func selectTopics(units []domain.Unit, unit string) []domain.Topic {
	var topics []domain.Topic
	for _, u := range units {
		if unit == "" || u.Name == unit {
			topics = append(topics, u.Topics...)
		}
	}
	return topics
}
