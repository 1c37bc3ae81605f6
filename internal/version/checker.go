// Package version checks GitHub for newer swaggerdeck releases.
package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	releaseURL   = "https://api.github.com/repos/cberube/swaggerdeck/releases/latest"
	checkTimeout = 5 * time.Second
)

// Update describes an available newer release.
type Update struct {
	Version string
	URL     string
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check returns the latest release when it is newer than current, nil when
// current is up to date.
func Check(current string) (*Update, error) {
	client := &http.Client{Timeout: checkTimeout}

	req, err := http.NewRequest(http.MethodGet, releaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "swaggerdeck/"+current)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}

	latest := strings.TrimPrefix(rel.TagName, "v")
	if latest == "" || !isNewer(latest, strings.TrimPrefix(current, "v")) {
		return nil, nil
	}

	return &Update{Version: latest, URL: rel.HTMLURL}, nil
}

// isNewer reports whether latest > current, comparing numeric parts and
// ignoring pre-release or build suffixes.
func isNewer(latest, current string) bool {
	a := parseParts(latest)
	b := parseParts(current)

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			return av > bv
		}
	}
	return false
}

func parseParts(v string) []int {
	if idx := strings.IndexAny(v, "-+"); idx != -1 {
		v = v[:idx]
	}

	var parts []int
	for _, p := range strings.Split(v, ".") {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		parts = append(parts, n)
	}
	return parts
}
