package tfrrs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http/cookiejar"
	"strings"
	"time"

	"tfrrs-backend/lib/restyutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
	"github.com/klauspost/compress/gzip"
)

const DefaultBaseUrl = "https://www.tfrrs.org"

const (
	fetchTimeout = time.Second * 30
	tokenTimeout = time.Second * 20
)

// Client scrapes www.tfrrs.org. It is stateless across calls: plain
// page fetches go through one shared cookie-less client, and the search
// flow builds a throwaway session per call (see newSearchSession).
type Client struct {
	http          *resty.Client
	baseUrl       string
	instrumentOut restyutil.InstrumentOutput
}

type ClientOptions struct {
	// overrides DefaultBaseUrl, for tests
	BaseUrl string
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	c := &Client{baseUrl: baseUrl}
	c.http = c.newHttpClient()
	return c
}

func (c *Client) newHttpClient() *resty.Client {
	client := resty.New()
	client.SetBaseURL(c.baseUrl)
	client.SetTimeout(fetchTimeout)

	// the site serves compressed bodies; setting Accept-Encoding by hand
	// disables the transport's transparent decompression, so bodies are
	// decoded in safeDecode instead
	client.SetHeader("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) "+
			"AppleWebKit/537.36 (KHTML, like Gecko) "+
			"Chrome/120.0.0.0 Safari/537.36")
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")
	client.SetHeader("Accept-Encoding", "gzip, deflate, br")

	instrumentHttp(c, client)
	return client
}

// newSearchSession builds a single-use client with its own cookie jar.
// The search token is bound to the session cookie that issued it, so
// concurrent searches must not share a jar.
func (c *Client) newSearchSession() *resty.Client {
	session := c.newHttpClient()
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}
	session.SetCookieJar(jar)
	return session
}

// safeDecode decompresses a response body according to its
// Content-Encoding and decodes it as UTF-8, replacing invalid
// sequences. Decode failures fall back to the raw bytes; this never
// hard-fails.
func safeDecode(body []byte, encoding string) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "br":
		if out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body))); err == nil {
			body = out
		}
	case "gzip":
		if r, err := gzip.NewReader(bytes.NewReader(body)); err == nil {
			if out, err := io.ReadAll(r); err == nil {
				body = out
			}
		}
	}
	return strings.ToValidUTF8(string(body), "�")
}

func (c *Client) getDocument(ctx context.Context, path string) (*goquery.Document, error) {
	return getDocument(ctx, c.http, path)
}

func getDocument(ctx context.Context, httpc *resty.Client, path string) (*goquery.Document, error) {
	res, err := httpc.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, res.StatusCode())
	}

	html := safeDecode(res.Body(), res.Header().Get("Content-Encoding"))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
