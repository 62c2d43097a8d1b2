package cleaner

import (
	"strings"
	"testing"
)

func TestCleanExplanation(t *testing.T) {
	c := Default()

	t.Run("Collapses whitespace", func(t *testing.T) {
		got := c.CleanExplanation("first line\n\nsecond   line\nthird")
		want := "first line second line third"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("Removes page markers", func(t *testing.T) {
		got := c.CleanExplanation("before 17 of 246 after")
		if strings.Contains(got, "17") || strings.Contains(got, "246") {
			t.Errorf("Page marker not removed: %q", got)
		}
		if got != "before after" {
			t.Errorf("Expected %q, got %q", "before after", got)
		}
	})

	t.Run("Removes rhetorical headings", func(t *testing.T) {
		got := c.CleanExplanation("Why the Correct Answer is B? Because it is. Why Not the Other Options A, C, D? They are wrong.")
		if strings.Contains(got, "Why") {
			t.Errorf("Heading not removed: %q", got)
		}
		if !strings.Contains(got, "Because it is.") {
			t.Errorf("Content lost: %q", got)
		}
	})

	t.Run("Removes section markers to end of line", func(t *testing.T) {
		got := c.CleanExplanation("The control applies.\nRelevant CMMC 2.0 References AC.L2-3.1.1\nFinal Answer:# B")
		if strings.Contains(got, "References") || strings.Contains(got, "AC.L2") {
			t.Errorf("Reference section not removed: %q", got)
		}
		if strings.Contains(got, "Final Answer") {
			t.Errorf("Final answer section not removed: %q", got)
		}
		if got != "The control applies." {
			t.Errorf("Expected %q, got %q", "The control applies.", got)
		}
	})

	t.Run("Removes boilerplate phrases case-insensitively", func(t *testing.T) {
		got := c.CleanExplanation("text PRACTICE EXAM more Leaders In IT Certification text")
		if strings.Contains(strings.ToLower(got), "practice exam") {
			t.Errorf("Phrase not removed: %q", got)
		}
		if got != "text more text" {
			t.Errorf("Expected %q, got %q", "text more text", got)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		input := "Why the Correct Answer is A? Reason.\nRelevant CMMC 2.0 References x\n12 of 246\n\nPractice Exam  done"
		once := c.CleanExplanation(input)
		twice := c.CleanExplanation(once)
		if once != twice {
			t.Errorf("Cleaning not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		if got := c.CleanExplanation(""); got != "" {
			t.Errorf("Expected empty string, got %q", got)
		}
	})
}

func TestCustomPhrases(t *testing.T) {
	c := New([]string{"ACME Corp"}, []string{"See also:"})

	got := c.CleanExplanation("ACME Corp says hello.\nSee also: chapter 9\nend")
	if got != "says hello. end" {
		t.Errorf("Expected %q, got %q", "says hello. end", got)
	}

	// Defaults should not apply once custom lists are given.
	got = c.CleanExplanation("Practice Exam stays")
	if got != "Practice Exam stays" {
		t.Errorf("Default phrase unexpectedly removed: %q", got)
	}
}

func TestStripPageMarkers(t *testing.T) {
	input := "line one\n3 of 246\nline two"
	got := StripPageMarkers(input)
	if strings.Contains(got, "246") {
		t.Errorf("Page marker not removed: %q", got)
	}
	if !strings.Contains(got, "line one\n") || !strings.Contains(got, "\nline two") {
		t.Errorf("Line structure not preserved: %q", got)
	}
}
