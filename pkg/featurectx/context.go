// Package featurectx is the client-side counterpart of the feature
// registry: it bootstraps a snapshot for the current session, keeps it
// cached, and answers CanAccess queries synchronously through pkg/access.
package featurectx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"hestia-console-be/pkg/access"
)

// State is the context lifecycle. The zero value is StateUninitialized.
type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "LOADING"
	case StateReady:
		return "READY"
	default:
		return "UNINITIALIZED"
	}
}

const registryCacheKey = "registry-entries"

// Client caches one registry snapshot per session. All methods are safe
// for concurrent use; concurrent refreshes are last-write-wins.
type Client struct {
	baseURL    string
	httpClient *http.Client
	memo       *gocache.Cache

	mu       sync.RWMutex
	state    State
	role     string
	snapshot *access.Snapshot
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. with one carrying
// auth headers or test transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTTL sets how long a fetched registry payload is memoized before a
// Refresh goes back to the network.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.memo = gocache.New(ttl, 2*ttl)
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		memo:       gocache.New(30*time.Second, time.Minute),
		state:      StateUninitialized,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) Role() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.role
}

// CanAccess is the pure synchronous access query. It answers from the
// cached snapshot, which survives a refresh in flight, so a refresh never
// produces transient denials. No session or no snapshot denies.
func (c *Client) CanAccess(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.role == "" || c.snapshot == nil {
		return false
	}
	return c.snapshot.CanAccess(code, c.role)
}

// Features lists the entries of the cached snapshot, nil before the first
// snapshot lands.
func (c *Client) Features() []access.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil {
		return nil
	}
	return c.snapshot.Features()
}

// StartSession establishes an authenticated session and loads the
// registry. A failed fetch still lands in StateReady, with an empty
// deny-all snapshot; the context never sticks in StateLoading.
func (c *Client) StartSession(ctx context.Context, role string) error {
	c.mu.Lock()
	c.role = role
	c.state = StateLoading
	c.mu.Unlock()

	entries, err := c.fetchEntries(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.snapshot = access.Empty()
		c.state = StateReady
		return err
	}
	c.snapshot = access.NewSnapshot(entries)
	c.state = StateReady
	return nil
}

// SeedSession bootstraps the context from a denormalized login payload,
// skipping the extra registry round trip.
func (c *Client) SeedSession(role string, entries []access.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.role = role
	c.snapshot = access.NewSnapshot(entries)
	c.state = StateReady
	c.memo.SetDefault(registryCacheKey, entries)
}

// Refresh re-fetches the registry stale-while-revalidate: the previous
// snapshot keeps answering queries until the new one lands, and a failed
// fetch keeps it untouched. Within the memoization TTL the fetch is
// answered from cache; call Invalidate first to force the network.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.role == "" {
		c.mu.Unlock()
		return fmt.Errorf("featurectx: no active session")
	}
	c.state = StateLoading
	c.mu.Unlock()

	entries, err := c.fetchEntries(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateReady
		return err
	}
	c.snapshot = access.NewSnapshot(entries)
	c.state = StateReady
	return nil
}

// Invalidate drops the memoized registry payload so the next Refresh hits
// the network. Call it after a mutation performed by this session.
func (c *Client) Invalidate() {
	c.memo.Delete(registryCacheKey)
}

// Logout clears the session and snapshot back to StateUninitialized.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.role = ""
	c.snapshot = nil
	c.state = StateUninitialized
	c.memo.Flush()
}

// hasVerdictBasis reports whether there is a snapshot to answer from,
// regardless of an in-flight refresh.
func (c *Client) hasVerdictBasis() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot != nil
}

type registryEnvelope struct {
	Data    []access.Entry `json:"data"`
	Error   bool           `json:"error"`
	Message string         `json:"message"`
}

func (c *Client) fetchEntries(ctx context.Context) ([]access.Entry, error) {
	if cached, ok := c.memo.Get(registryCacheKey); ok {
		return cached.([]access.Entry), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/features", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("featurectx: registry fetch returned status %d", resp.StatusCode)
	}

	var envelope registryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("featurectx: decoding registry payload: %w", err)
	}
	if envelope.Error {
		return nil, fmt.Errorf("featurectx: registry fetch failed: %s", envelope.Message)
	}

	c.memo.SetDefault(registryCacheKey, envelope.Data)
	return envelope.Data, nil
}
