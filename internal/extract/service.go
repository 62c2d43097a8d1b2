package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/grcjp/testbank/internal/cleaner"
	"github.com/grcjp/testbank/internal/storage"
	"github.com/grcjp/testbank/pkg/types"
)

// Service runs the extraction pipeline: raw dump -> cleaned text -> question
// records -> pretty-printed JSON bank.
type Service struct {
	cfg     types.ExtractConfig
	parser  *Parser
	storage storage.Adapter
	logger  *zap.Logger
}

// NewService creates an extraction service for the given configuration.
func NewService(cfg types.ExtractConfig, adapter storage.Adapter, logger *zap.Logger) *Service {
	c := cleaner.NewFromConfig(cfg)
	return &Service{
		cfg:     cfg,
		parser:  NewParser(c, cfg.Strict, logger),
		storage: adapter,
		logger:  logger,
	}
}

// Run processes the configured source file and writes both outputs through
// the storage adapter. Returns the number of extracted questions.
func (s *Service) Run(ctx context.Context) (int, error) {
	data, err := os.ReadFile(s.cfg.SourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", types.ErrInputNotFound, s.cfg.SourcePath)
		}
		return 0, fmt.Errorf("failed to read source: %w", err)
	}
	s.logger.Info("read source text",
		zap.String("path", s.cfg.SourcePath),
		zap.Int("bytes", len(data)))

	text := cleaner.StripPageMarkers(string(data))

	if err := s.storage.Put(ctx, s.cfg.RawTextPath, strings.NewReader(text)); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", types.ErrOutputWriteFailed, s.cfg.RawTextPath, err)
	}

	questions := s.parser.Parse(text)
	if len(questions) == 0 {
		s.logger.Warn("no questions extracted", zap.String("source", s.cfg.SourcePath))
	}

	out, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode questions: %w", err)
	}
	if err := s.storage.Put(ctx, s.cfg.QuestionsPath, strings.NewReader(string(out))); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", types.ErrOutputWriteFailed, s.cfg.QuestionsPath, err)
	}

	s.logger.Info("extracted questions",
		zap.Int("count", len(questions)),
		zap.String("raw_text", s.cfg.RawTextPath),
		zap.String("questions", s.cfg.QuestionsPath))
	return len(questions), nil
}
