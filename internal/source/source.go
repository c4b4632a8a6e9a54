// Package source acquires the text to display.
//
// Priority: piped stdin, then the clipboard when requested, then a file
// argument, then an editor session on a scratch template.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

// ErrNoContent is returned when the resolved text is empty or whitespace
var ErrNoContent = errors.New("no content to display")

// Kind names where the text came from
type Kind string

const (
	KindStdin     Kind = "stdin"
	KindClipboard Kind = "clipboard"
	KindFile      Kind = "file"
	KindEditor    Kind = "editor"
)

// Text is resolved content plus its origin
type Text struct {
	Content string
	Kind    Kind
	// Name is the file path for KindFile, otherwise the kind
	Name string
}

// Request selects among the non-stdin sources
type Request struct {
	Path      string
	Clipboard bool
}

// Resolver reads text from the first available source. The function fields
// exist so tests can replace the terminal and external programs.
type Resolver struct {
	Stdin         io.Reader
	StdinIsPiped  func() bool
	ReadClipboard func() (string, error)
	Edit          func(ctx context.Context, path string) error
}

// NewResolver wires the resolver to the real terminal, clipboard and editor
func NewResolver() *Resolver {
	return &Resolver{
		Stdin:         os.Stdin,
		StdinIsPiped:  StdinIsPiped,
		ReadClipboard: clipboard.ReadAll,
		Edit:          RunEditor,
	}
}

// StdinIsPiped reports whether stdin is something other than a terminal
func StdinIsPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Resolve returns the text to display or ErrNoContent
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Text, error) {
	text, err := r.read(ctx, req)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text.Content) == "" {
		return nil, ErrNoContent
	}

	return text, nil
}

func (r *Resolver) read(ctx context.Context, req Request) (*Text, error) {
	if r.StdinIsPiped != nil && r.StdinIsPiped() {
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return &Text{Content: string(data), Kind: KindStdin, Name: string(KindStdin)}, nil
	}

	if req.Clipboard {
		content, err := r.ReadClipboard()
		if err != nil {
			return nil, fmt.Errorf("failed to read clipboard: %w", err)
		}
		return &Text{Content: content, Kind: KindClipboard, Name: string(KindClipboard)}, nil
	}

	if req.Path != "" {
		data, err := os.ReadFile(req.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", req.Path, err)
		}
		return &Text{Content: string(data), Kind: KindFile, Name: req.Path}, nil
	}

	content, err := r.fromEditor(ctx)
	if err != nil {
		return nil, err
	}
	return &Text{Content: content, Kind: KindEditor, Name: string(KindEditor)}, nil
}
