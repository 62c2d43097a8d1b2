package epub

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/grcjp/testbank/internal/storage"
	"github.com/grcjp/testbank/pkg/types"
)

func newTestService(t *testing.T) (*Service, storage.Adapter) {
	t.Helper()
	adapter, err := storage.NewLocalAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create adapter: %v", err)
	}
	t.Cleanup(func() { adapter.Close() })

	svc := NewService(types.BookConfig{Creator: "GRCJP", Language: "en"}, adapter, zap.NewNop())
	return svc, adapter
}

func TestBuildBank(t *testing.T) {
	svc, adapter := newTestService(t)
	ctx := context.Background()

	bankJSON := `[
  {
    "id": "Q1",
    "domain": "Access Control",
    "question": "Which control limits access?",
    "choices": [
      {"id": "A", "text": "foo", "correct": false},
      {"id": "B", "text": "bar", "correct": true},
      {"id": "C", "text": "baz", "correct": false},
      {"id": "D", "text": "qux", "correct": false}
    ],
    "explanation": "",
    "reference": ""
  }
]`
	if err := adapter.Put(ctx, "data/questions.json", strings.NewReader(bankJSON)); err != nil {
		t.Fatalf("Failed to seed bank: %v", err)
	}

	bank := types.Bank{
		Name:          "bank206",
		QuestionsPath: "data/questions.json",
		OutputPath:    "exports/test.epub",
		Title:         "Test Bank",
	}
	if err := svc.BuildBank(ctx, bank); err != nil {
		t.Fatalf("BuildBank failed: %v", err)
	}

	rc, err := adapter.Get(ctx, "exports/test.epub")
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Output is not a valid zip: %v", err)
	}
	if zr.File[0].Name != "mimetype" {
		t.Errorf("First entry should be mimetype, got %s", zr.File[0].Name)
	}

	ch := readEntry(t, zr, "OEBPS/text/01-access-control.xhtml")
	if !strings.Contains(ch, "<b>Answer:</b> B: bar") {
		t.Errorf("Chapter missing rendered answer: %s", ch)
	}
}

func TestBuildBank_MissingInput(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.BuildBank(context.Background(), types.Bank{
		Name:          "bank206",
		QuestionsPath: "data/nope.json",
		OutputPath:    "exports/test.epub",
		Title:         "Test Bank",
	})
	if !errors.Is(err, types.ErrInputNotFound) {
		t.Errorf("Expected ErrInputNotFound, got %v", err)
	}
}

func TestBuildBank_MalformedInput(t *testing.T) {
	svc, adapter := newTestService(t)
	ctx := context.Background()

	if err := adapter.Put(ctx, "data/questions.json", strings.NewReader("{not json")); err != nil {
		t.Fatalf("Failed to seed bank: %v", err)
	}

	err := svc.BuildBank(ctx, types.Bank{
		Name:          "bank206",
		QuestionsPath: "data/questions.json",
		OutputPath:    "exports/test.epub",
		Title:         "Test Bank",
	})
	if !errors.Is(err, types.ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
}
