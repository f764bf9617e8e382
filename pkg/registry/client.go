// Package registry is the default package resolver/installer. It resolves
// metadata against an npm-compatible registry over HTTP and fetches package
// trees from registry tarballs or, for git-pinned specs, from git hosts.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/glorpus-work/depcache/pkg/errors"
	"github.com/glorpus-work/depcache/pkg/model"
	"github.com/glorpus-work/depcache/pkg/semver"
)

// DefaultURL is the public npm registry.
const DefaultURL = "https://registry.npmjs.org"

// Client resolves package metadata and installs package trees.
type Client struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// NewClient creates a registry client. An empty baseURL selects the public
// registry.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: timeout},
		userAgent: "depcache/1.0",
	}
}

// packument is the subset of the registry metadata document we read.
type packument struct {
	DistTags map[string]string `json:"dist-tags"`
	Versions map[string]struct {
		Dist struct {
			Tarball string `json:"tarball"`
			Shasum  string `json:"shasum"`
		} `json:"dist"`
	} `json:"versions"`
}

// View fetches the package's registry document and reports its latest
// version plus all known versions in ascending order.
func (c *Client) View(ctx context.Context, name string) (model.PackageInfo, error) {
	doc, err := c.packument(ctx, name)
	if err != nil {
		return model.PackageInfo{}, err
	}

	info := model.PackageInfo{Version: doc.DistTags["latest"]}
	info.Versions = make([]string, 0, len(doc.Versions))
	for v := range doc.Versions {
		info.Versions = append(info.Versions, v)
	}
	semver.Sort(info.Versions)
	return info, nil
}

func (c *Client) packument(ctx context.Context, name string) (*packument, error) {
	// Scoped names keep their @ but escape the inner slash, per registry
	// convention.
	url := c.baseURL + "/" + strings.ReplaceAll(name, "/", "%2f")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRegistry, "failed to create request for %s: %v", name, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRegistry, "could not reach registry for %s: %v", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s: %w", resp.StatusCode, name, errors.ErrRegistry)
	}

	var doc packument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Wrapf(errors.ErrRegistry, "failed to parse metadata for %s: %v", name, err)
	}
	return &doc, nil
}
