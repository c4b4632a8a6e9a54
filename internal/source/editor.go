package source

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Template is the scratch file handed to the editor
const Template = "# Enter your teleprompter text below\n" +
	"# Lines starting with # will be removed\n" +
	"# Save and close the editor when done\n\n"

// Editor returns the user's editor command, preferring $VISUAL
func Editor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// RunEditor opens path in the user's editor attached to the terminal
func RunEditor(ctx context.Context, path string) error {
	args := strings.Fields(Editor())
	args = append(args, path)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", args[0], err)
	}
	return nil
}

// StripComments drops lines whose first non-blank character is '#'
func StripComments(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func (r *Resolver) fromEditor(ctx context.Context) (string, error) {
	f, err := os.CreateTemp("", "tp-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(Template); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write template: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write template: %w", err)
	}

	if err := r.Edit(ctx, path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}

	content := StripComments(string(data))
	if strings.TrimSpace(content) == "" {
		return "", ErrNoContent
	}
	return content, nil
}
