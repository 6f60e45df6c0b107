package cosmic

import (
	"strings"
	"time"
)

// =====================================================
// COSMIC BUCKET CONFIGURATION
// =====================================================

const (
	ProductionAPIURL = "https://api.cosmicjs.com/v3"
	StagingAPIURL    = "https://api.cosmic-staging.com/v3"
)

type Config struct {
	BucketSlug     string        // Bucket identifier
	ReadKey        string        // Read key (required)
	WriteKey       string        // Write key (optional; writes fail closed without it)
	APIURL         string        // API base URL, overrides APIEnvironment
	APIEnvironment string        // production | staging
	Timeout        time.Duration // Per-request timeout
}

// BaseURL returns the API root for the configured environment.
func (c *Config) BaseURL() string {
	if c.APIURL != "" {
		return strings.TrimRight(c.APIURL, "/")
	}
	if c.APIEnvironment == "staging" {
		return StagingAPIURL
	}
	return ProductionAPIURL
}

// ObjectsURL returns the objects collection endpoint.
func (c *Config) ObjectsURL() string {
	return c.BaseURL() + "/buckets/" + c.BucketSlug + "/objects"
}

// ObjectURL returns the endpoint of a single object.
func (c *Config) ObjectURL(id string) string {
	return c.ObjectsURL() + "/" + id
}

func (c *Config) CanWrite() bool {
	return c.WriteKey != ""
}
