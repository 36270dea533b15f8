package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LoadError reports a transport-level failure fetching the data document.
type LoadError struct {
	Resource string
	Status   int
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: unexpected status %d", e.Resource, e.Status)
}

// Loader fetches the portfolio document from a local file or an HTTP URL.
type Loader struct {
	Source string
	Client *http.Client
}

// NewLoader creates a Loader for the given source path or URL.
func NewLoader(source string) *Loader {
	return &Loader{Source: source, Client: http.DefaultClient}
}

// resource returns the short name used in errors, e.g. "data.json".
func (l *Loader) resource() string {
	if isURL(l.Source) {
		return path.Base(l.Source)
	}
	return filepath.Base(l.Source)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load fetches the document and verifies it parses as JSON, returning the
// raw bytes. A non-2xx HTTP response is a LoadError; malformed JSON
// propagates as a wrapped parse error.
func (l *Loader) Load(ctx context.Context) ([]byte, error) {
	name := l.resource()

	var data []byte
	if isURL(l.Source) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
		if err != nil {
			return nil, fmt.Errorf("building request for %s: %w", name, err)
		}
		resp, err := l.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", name, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &LoadError{Resource: name, Status: resp.StatusCode}
		}
		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	} else {
		var err error
		data, err = os.ReadFile(l.Source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	return data, nil
}
