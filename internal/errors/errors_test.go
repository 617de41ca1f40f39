package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestCodeOfWalksChain(t *testing.T) {
	base := NewSubject(CodeShape, "Comment", "bad shape", nil)
	wrapped := fmt.Errorf("compile lyth-dark: %w", base)

	if got := CodeOf(wrapped); got != CodeShape {
		t.Fatalf("CodeOf = %q, want %q", got, CodeShape)
	}
	if got := SubjectOf(wrapped); got != "Comment" {
		t.Fatalf("SubjectOf = %q, want %q", got, "Comment")
	}
	if !IsCode(wrapped, CodeShape) {
		t.Fatal("expected IsCode to match wrapped error")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	err := stderrors.New("plain")
	if got := CodeOf(err); got != CodeUnknown {
		t.Fatalf("CodeOf = %q, want %q", got, CodeUnknown)
	}
	if SubjectOf(err) != "" {
		t.Fatal("expected empty subject for plain error")
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	inner := stderrors.New("inner")
	if got := New(CodeParseFailed, "", inner).Error(); got != "inner" {
		t.Fatalf("expected wrapped message, got %q", got)
	}
	if got := New(CodeNotFound, "", nil).Error(); got != string(CodeNotFound) {
		t.Fatalf("expected code fallback, got %q", got)
	}
	if !stderrors.Is(New(CodeParseFailed, "x", inner), inner) {
		t.Fatal("expected Unwrap to expose inner error")
	}
}
