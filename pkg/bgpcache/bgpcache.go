// Package bgpcache puts an optional Redis read-through cache in front of
// expensive BGP cone computations and AS2Org lookups, adapted from the
// teacher's APP_DB Redis client (pkg/device/appldb.go). Entirely optional:
// a nil/empty address means callers should skip it and go straight to
// pkg/bgp and pkg/as2org.
package bgpcache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Client wraps a Redis connection used to cache cone and org lookups
// across repeated runs against the same BGP/AS2Org snapshot.
type Client struct {
	client *redis.Client
	ctx    context.Context
}

// NewClient creates a Client pointed at addr (e.g. "localhost:6379").
func NewClient(addr string) *Client {
	return &Client{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ctx:    context.Background(),
	}
}

// Connect tests the connection.
func (c *Client) Connect() error {
	return c.client.Ping(c.ctx).Err()
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.client.Close()
}

func coneKey(asn int) string { return fmt.Sprintf("bdrmapit:cone:%d", asn) }
func orgKey(asn int) string  { return fmt.Sprintf("bdrmapit:org:%d", asn) }

// GetCone returns the cached cone for asn, if present.
func (c *Client) GetCone(asn int) ([]int, bool, error) {
	return c.getIntSlice(coneKey(asn))
}

// PutCone caches cone for asn.
func (c *Client) PutCone(asn int, cone []int) error {
	return c.putIntSlice(coneKey(asn), cone)
}

// GetOrg returns the cached organization id for asn, if present.
func (c *Client) GetOrg(asn int) (int, bool, error) {
	vals, ok, err := c.getIntSlice(orgKey(asn))
	if err != nil || !ok || len(vals) == 0 {
		return 0, ok, err
	}
	return vals[0], true, nil
}

// PutOrg caches org for asn.
func (c *Client) PutOrg(asn, org int) error {
	return c.putIntSlice(orgKey(asn), []int{org})
}

func (c *Client) getIntSlice(key string) ([]int, bool, error) {
	raw, err := c.client.Get(c.ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("bgpcache: reading %s: %w", key, err)
	}
	var vals []int
	if err := json.Unmarshal([]byte(raw), &vals); err != nil {
		return nil, false, fmt.Errorf("bgpcache: decoding %s: %w", key, err)
	}
	return vals, true, nil
}

func (c *Client) putIntSlice(key string, vals []int) error {
	raw, err := json.Marshal(vals)
	if err != nil {
		return fmt.Errorf("bgpcache: encoding %s: %w", key, err)
	}
	if err := c.client.Set(c.ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("bgpcache: writing %s: %w", key, err)
	}
	return nil
}

// ConeGraph is the Cone/Conesize surface of a pkg/bgp.Graph that
// ConeCache wraps with a read-through Redis cache. It is kept minimal so
// tests can supply a fake without pulling in pkg/bgp.
type ConeGraph interface {
	Cone(asn int) map[int]struct{}
	Conesize(asn int) int
}

// ConeCache is a read-through cache in front of a ConeGraph.
type ConeCache struct {
	cache *Client
	graph ConeGraph
}

// NewConeCache wraps graph with a read-through cache backed by cache. If
// cache is nil, every call falls through to graph directly.
func NewConeCache(cache *Client, graph ConeGraph) *ConeCache {
	return &ConeCache{cache: cache, graph: graph}
}

// Cone returns asn's customer cone, consulting the cache first.
func (c *ConeCache) Cone(asn int) map[int]struct{} {
	if c.cache == nil {
		return c.graph.Cone(asn)
	}
	if vals, ok, err := c.cache.GetCone(asn); err == nil && ok {
		set := make(map[int]struct{}, len(vals))
		for _, v := range vals {
			set[v] = struct{}{}
		}
		return set
	}
	cone := c.graph.Cone(asn)
	vals := make([]int, 0, len(cone))
	for v := range cone {
		vals = append(vals, v)
	}
	_ = c.cache.PutCone(asn, vals)
	return cone
}

// Conesize returns the size of asn's customer cone.
func (c *ConeCache) Conesize(asn int) int {
	return len(c.Cone(asn))
}

// OrgGraph is the minimal AS2Org surface OrgCache wraps.
type OrgGraph interface {
	Org(asn int) int
}

// OrgCache is a read-through cache in front of an OrgGraph.
type OrgCache struct {
	cache *Client
	orgs  OrgGraph
}

// NewOrgCache wraps orgs with a read-through cache backed by cache. If
// cache is nil, every call falls through to orgs directly.
func NewOrgCache(cache *Client, orgs OrgGraph) *OrgCache {
	return &OrgCache{cache: cache, orgs: orgs}
}

// Org returns asn's organization id, consulting the cache first.
func (c *OrgCache) Org(asn int) int {
	if c.cache == nil {
		return c.orgs.Org(asn)
	}
	if org, ok, err := c.cache.GetOrg(asn); err == nil && ok {
		return org
	}
	org := c.orgs.Org(asn)
	_ = c.cache.PutOrg(asn, org)
	return org
}
