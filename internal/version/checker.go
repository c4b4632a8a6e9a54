package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// ReleasesURL is the GitHub endpoint for the latest tp release
	ReleasesURL  = "https://api.github.com/repos/studiowebux/tp/releases/latest"
	checkTimeout = 5 * time.Second
)

// Release is the subset of the GitHub release payload tp reads
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Update describes the outcome of a release check
type Update struct {
	Available bool
	Latest    string
	URL       string
}

// Checker queries a release endpoint
type Checker struct {
	URL    string
	Client *http.Client
}

// NewChecker returns a Checker for the public release endpoint
func NewChecker() *Checker {
	return &Checker{
		URL:    ReleasesURL,
		Client: &http.Client{Timeout: checkTimeout},
	}
}

// Check compares the latest published release against current
func (c *Checker) Check(ctx context.Context, current string) (*Update, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "tp/"+current)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	return &Update{
		Available: latest != "" && IsNewer(latest, strings.TrimPrefix(current, "v")),
		Latest:    latest,
		URL:       release.HTMLURL,
	}, nil
}

// IsNewer reports whether latest > current, ignoring pre-release and build
// suffixes ("0.2.0-dev" compares as "0.2.0")
func IsNewer(latest, current string) bool {
	l := parseVersion(latest)
	c := parseVersion(current)

	for len(l) < len(c) {
		l = append(l, 0)
	}
	for len(c) < len(l) {
		c = append(c, 0)
	}

	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func parseVersion(v string) []int {
	if idx := strings.IndexAny(v, "-+"); idx != -1 {
		v = v[:idx]
	}

	parts := strings.Split(v, ".")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
