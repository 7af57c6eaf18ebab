// internal/uniprot/client.go

// Package uniprot validates accession-to-name mappings against the UniProt
// REST API. Lookups are cached in a small LRU so repeated accessions in one
// input file cost a single request.
package uniprot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://rest.uniprot.org"
	defaultTimeout   = 10 * time.Second
	defaultCacheSize = 128
)

// Record is the subset of a UniProt entry the validator needs.
type Record struct {
	ProteinName string
	GeneNames   []string
}

// Client fetches and caches UniProt entries. Not safe for concurrent use;
// the app serializes validation.
type Client struct {
	baseURL   string
	http      *http.Client
	cache     *lru
	cacheSize int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithCacheSize overrides the LRU capacity.
func WithCacheSize(n int) Option {
	return func(c *Client) { c.cacheSize = n }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		http:      &http.Client{Timeout: defaultTimeout},
		cacheSize: defaultCacheSize,
	}
	for _, o := range opts {
		o(c)
	}
	c.cache = newLRU(c.cacheSize)
	return c
}

// Fetch returns the cached or freshly fetched record for an accession.
func (c *Client) Fetch(ctx context.Context, accession string) (Record, error) {
	accession = strings.TrimSpace(accession)
	if accession == "" {
		return Record{}, fmt.Errorf("empty accession")
	}
	if rec, ok := c.cache.get(accession); ok {
		return rec, nil
	}

	url := fmt.Sprintf("%s/uniprotkb/%s.json", c.baseURL, accession)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Record{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("fetch %s: %w", accession, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return Record{}, fmt.Errorf("fetch %s: status %s", accession, resp.Status)
	}

	var entry apiEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return Record{}, fmt.Errorf("decode %s: %w", accession, err)
	}

	rec := entry.toRecord()
	c.cache.put(accession, rec)
	return rec, nil
}

// Validate reports whether name matches the entry's recommended protein name
// or any gene name/synonym, case-insensitively.
func (c *Client) Validate(ctx context.Context, accession, name string) (bool, error) {
	rec, err := c.Fetch(ctx, accession)
	if err != nil {
		return false, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return false, nil
	}
	if strings.ToLower(rec.ProteinName) == want {
		return true, nil
	}
	for _, g := range rec.GeneNames {
		if strings.ToLower(g) == want {
			return true, nil
		}
	}
	return false, nil
}

// apiEntry mirrors the slice of the UniProt JSON schema the validator reads.
type apiEntry struct {
	ProteinDescription struct {
		RecommendedName struct {
			FullName struct {
				Value string `json:"value"`
			} `json:"fullName"`
		} `json:"recommendedName"`
	} `json:"proteinDescription"`
	Genes []struct {
		GeneName struct {
			Value string `json:"value"`
		} `json:"geneName"`
		Synonyms []struct {
			Value string `json:"value"`
		} `json:"synonyms"`
	} `json:"genes"`
}

func (e apiEntry) toRecord() Record {
	rec := Record{ProteinName: e.ProteinDescription.RecommendedName.FullName.Value}
	for _, g := range e.Genes {
		if g.GeneName.Value != "" {
			rec.GeneNames = append(rec.GeneNames, g.GeneName.Value)
		}
		for _, s := range g.Synonyms {
			if s.Value != "" {
				rec.GeneNames = append(rec.GeneNames, s.Value)
			}
		}
	}
	return rec
}
