package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeResolver never touches the real terminal, clipboard or editor
func fakeResolver(t *testing.T, stdin string, piped bool) *Resolver {
	t.Helper()
	return &Resolver{
		Stdin:        strings.NewReader(stdin),
		StdinIsPiped: func() bool { return piped },
		ReadClipboard: func() (string, error) {
			return "from clipboard", nil
		},
		Edit: func(ctx context.Context, path string) error {
			t.Fatal("editor should not run")
			return nil
		},
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestResolve_Priority(t *testing.T) {
	file := writeFile(t, "from file")

	tests := []struct {
		name     string
		piped    bool
		req      Request
		wantKind Kind
		want     string
	}{
		{
			name:     "stdin wins over everything",
			piped:    true,
			req:      Request{Path: file, Clipboard: true},
			wantKind: KindStdin,
			want:     "from stdin",
		},
		{
			name:     "clipboard before file",
			req:      Request{Path: file, Clipboard: true},
			wantKind: KindClipboard,
			want:     "from clipboard",
		},
		{
			name:     "file",
			req:      Request{Path: file},
			wantKind: KindFile,
			want:     "from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fakeResolver(t, "from stdin", tt.piped)

			text, err := r.Resolve(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if text.Kind != tt.wantKind || text.Content != tt.want {
				t.Errorf("Resolve() = %+v, want %s %q", text, tt.wantKind, tt.want)
			}
		})
	}
}

func TestResolve_FileName(t *testing.T) {
	file := writeFile(t, "hello")
	text, err := fakeResolver(t, "", false).Resolve(context.Background(), Request{Path: file})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if text.Name != file {
		t.Errorf("Name = %q, want %q", text.Name, file)
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Run("empty stdin", func(t *testing.T) {
		_, err := fakeResolver(t, "  \n\t\n", true).Resolve(context.Background(), Request{})
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("error = %v, want ErrNoContent", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fakeResolver(t, "", false).Resolve(context.Background(), Request{Path: "/nonexistent/tp.txt"})
		if err == nil || !strings.Contains(err.Error(), "failed to read file") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("clipboard failure", func(t *testing.T) {
		r := fakeResolver(t, "", false)
		r.ReadClipboard = func() (string, error) { return "", errors.New("no xclip") }
		_, err := r.Resolve(context.Background(), Request{Clipboard: true})
		if err == nil || !strings.Contains(err.Error(), "no xclip") {
			t.Errorf("error = %v", err)
		}
	})
}

func TestResolve_Editor(t *testing.T) {
	tests := []struct {
		name    string
		written string
		want    string
		wantErr error
	}{
		{
			name:    "comments stripped",
			written: Template + "Good evening.\n  # aside\nWelcome back.\n",
			want:    "\nGood evening.\nWelcome back.\n",
		},
		{
			name:    "template untouched",
			written: Template,
			wantErr: ErrNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fakeResolver(t, "", false)
			r.Edit = func(ctx context.Context, path string) error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if string(data) != Template {
					t.Errorf("editor got %q, want the template", data)
				}
				return os.WriteFile(path, []byte(tt.written), 0644)
			}

			text, err := r.Resolve(context.Background(), Request{})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if text.Kind != KindEditor || text.Content != tt.want {
				t.Errorf("Resolve() = %+v, want editor %q", text, tt.want)
			}
		})
	}
}

func TestResolve_EditorFailure(t *testing.T) {
	r := fakeResolver(t, "", false)
	r.Edit = func(ctx context.Context, path string) error {
		return errors.New("editor exited 1")
	}

	if _, err := r.Resolve(context.Background(), Request{}); err == nil {
		t.Error("expected editor error")
	}
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\n# b\nc", "a\nc"},
		{"\t# indented\nkept", "kept"},
		{"not # a comment", "not # a comment"},
		{"# only", ""},
	}

	for _, tt := range tests {
		if got := StripComments(tt.in); got != tt.want {
			t.Errorf("StripComments(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := Editor(); got != "vi" {
		t.Errorf("Editor() = %q, want vi", got)
	}

	t.Setenv("EDITOR", "nano")
	if got := Editor(); got != "nano" {
		t.Errorf("Editor() = %q, want nano", got)
	}

	t.Setenv("VISUAL", "code -w")
	if got := Editor(); got != "code -w" {
		t.Errorf("Editor() = %q, want code -w", got)
	}
}
