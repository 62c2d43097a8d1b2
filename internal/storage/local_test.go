package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/grcjp/testbank/pkg/types"
)

func TestLocalAdapter(t *testing.T) {
	tmpDir := t.TempDir()
	adapter, err := NewLocalAdapter(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create local adapter: %v", err)
	}
	defer adapter.Close()

	ctx := context.Background()
	testPath := "data/questions.json"
	testData := []byte(`[{"id":"Q1"}]`)

	t.Run("Put", func(t *testing.T) {
		err := adapter.Put(ctx, testPath, bytes.NewReader(testData))
		if err != nil {
			t.Fatalf("Failed to put data: %v", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := adapter.Exists(ctx, testPath)
		if err != nil {
			t.Fatalf("Failed to check existence: %v", err)
		}
		if !exists {
			t.Error("File should exist after Put")
		}
	})

	t.Run("Get", func(t *testing.T) {
		reader, err := adapter.Get(ctx, testPath)
		if err != nil {
			t.Fatalf("Failed to get data: %v", err)
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			t.Fatalf("Failed to read data: %v", err)
		}
		if !bytes.Equal(data, testData) {
			t.Errorf("Expected %s, got %s", testData, data)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := adapter.Get(ctx, "exports/missing.epub")
		if !errors.Is(err, types.ErrInputNotFound) {
			t.Errorf("Expected ErrInputNotFound, got %v", err)
		}
	})

	t.Run("ExistsMissing", func(t *testing.T) {
		exists, err := adapter.Exists(ctx, "exports/missing.epub")
		if err != nil {
			t.Fatalf("Failed to check existence: %v", err)
		}
		if exists {
			t.Error("Missing file reported as existing")
		}
	})

	t.Run("PutOverwrite", func(t *testing.T) {
		updated := []byte(`[]`)
		if err := adapter.Put(ctx, testPath, bytes.NewReader(updated)); err != nil {
			t.Fatalf("Failed to overwrite: %v", err)
		}

		reader, err := adapter.Get(ctx, testPath)
		if err != nil {
			t.Fatalf("Failed to get data: %v", err)
		}
		defer reader.Close()

		data, _ := io.ReadAll(reader)
		if !bytes.Equal(data, updated) {
			t.Errorf("Expected %s after overwrite, got %s", updated, data)
		}
	})
}

func TestNewAdapter(t *testing.T) {
	t.Run("Local", func(t *testing.T) {
		adapter, err := NewAdapter(types.StorageConfig{
			Adapter: "local",
			Local:   types.LocalStorageOpts{BasePath: t.TempDir()},
		})
		if err != nil {
			t.Fatalf("Failed to create adapter: %v", err)
		}
		adapter.Close()
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := NewAdapter(types.StorageConfig{Adapter: "ftp"})
		if err == nil {
			t.Error("Expected error for unknown adapter")
		}
	})
}
