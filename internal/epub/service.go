package epub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/grcjp/testbank/internal/storage"
	"github.com/grcjp/testbank/pkg/types"
)

// Service builds a configured bank into an EPUB through the storage adapter.
type Service struct {
	builder *Builder
	storage storage.Adapter
	logger  *zap.Logger
}

// NewService creates a book-building service.
func NewService(book types.BookConfig, adapter storage.Adapter, logger *zap.Logger) *Service {
	return &Service{
		builder: NewBuilder(book),
		storage: adapter,
		logger:  logger,
	}
}

// BuildBank reads the bank's question JSON, renders the book, and writes it
// to the bank's output path.
func (s *Service) BuildBank(ctx context.Context, bank types.Bank) error {
	questions, err := s.LoadBank(ctx, bank.QuestionsPath)
	if err != nil {
		return err
	}

	book, err := s.builder.Build(questions, bank.Title)
	if err != nil {
		return fmt.Errorf("failed to build book: %w", err)
	}

	if err := s.storage.Put(ctx, bank.OutputPath, bytes.NewReader(book)); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrOutputWriteFailed, bank.OutputPath, err)
	}

	s.logger.Info("wrote book",
		zap.String("bank", bank.Name),
		zap.Int("questions", len(questions)),
		zap.String("output", bank.OutputPath))
	return nil
}

// LoadBank reads and decodes a question-bank JSON file.
func (s *Service) LoadBank(ctx context.Context, path string) ([]types.Question, error) {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check bank: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s (run extract first?)", types.ErrInputNotFound, path)
	}

	rc, err := s.storage.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank: %w", err)
	}

	var questions []types.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrMalformedInput, path, err)
	}
	return questions, nil
}
