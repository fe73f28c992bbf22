// Package geoip resolves the shopper's approximate location from
// ipinfo.io for the sales log.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/miguelangelabou/globosanabell/pkg/httpclient"
)

const baseURL = "https://ipinfo.io"

// Lookup is the location snapshot stored with each sale.
type Lookup struct {
	IP       string
	Location string
}

// Resolver resolves IP addresses to locations.
type Resolver interface {
	Resolve(ctx context.Context, ip string) (*Lookup, error)
}

// Client calls ipinfo.io through a retrying circuit-breaker client.
type Client struct {
	http  *httpclient.Client
	token string
}

// NewClient creates a geoip client. The token may be empty for the
// unauthenticated free tier.
func NewClient(token string, l *slog.Logger) *Client {
	return &Client{
		http:  httpclient.New(httpclient.DefaultConfig("ipinfo"), l),
		token: token,
	}
}

type ipinfoResponse struct {
	IP      string `json:"ip"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Loc     string `json:"loc"`
}

// Resolve looks up the IP and formats the location as
// "City, Region, Country | lat,lon".
func (c *Client) Resolve(ctx context.Context, ip string) (*Lookup, error) {
	url := fmt.Sprintf("%s/%s/json", baseURL, ip)
	if c.token != "" {
		url += "?token=" + c.token
	}

	body, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("resolving ip %s: %w", ip, err)
	}

	var resp ipinfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding ipinfo response: %w", err)
	}

	return &Lookup{
		IP:       resp.IP,
		Location: fmt.Sprintf("%s, %s, %s | %s", resp.City, resp.Region, resp.Country, resp.Loc),
	}, nil
}
