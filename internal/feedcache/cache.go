package feedcache

import (
	"sync"
	"time"
)

// PostUser is the owner info joined into each feed entry.
type PostUser struct {
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage"`
}

// Post is one feed entry as served by GET /api/books.
type Post struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	Rating    int       `json:"ratings"`
	ImageURL  string    `json:"image"`
	User      PostUser  `json:"user"`
}

// PageResult is the wire shape of one feed page.
type PageResult struct {
	Books       []Post `json:"books"`
	CurrentPage int    `json:"currentPage"`
	TotalBooks  int64  `json:"totalBooks"`
	TotalPages  int    `json:"totalPages"`
}

// Generation tags one in-flight fetch. A response whose tag is older than
// the cache's current generation is discarded on arrival, so a refresh
// that completes first always wins over a slower superseded fetch.
type Generation uint64

// Cache accumulates fetched feed pages into a single ordered sequence in
// which each post ID appears at most once.
type Cache struct {
	mu          sync.Mutex
	posts       []Post
	seen        map[string]struct{}
	currentPage int
	hasMore     bool
	generation  Generation
	loadingMore bool
}

func New() *Cache {
	return &Cache{
		seen:    make(map[string]struct{}),
		hasMore: true,
	}
}

// BeginRefresh invalidates every fetch currently in flight and returns
// the tag the refresh response must carry to be applied.
func (c *Cache) BeginRefresh() Generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return c.generation
}

// Generation returns the tag a fetch started now would carry.
func (c *Cache) Generation() Generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// BeginLoadMore reserves the single load-more slot. It reports false,
// without a usable tag, while another load-more is in flight or the feed
// is already exhausted.
func (c *Cache) BeginLoadMore() (Generation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadingMore || !c.hasMore {
		return 0, false
	}
	c.loadingMore = true
	return c.generation, true
}

// EndLoadMore releases the load-more slot. Callers must pair it with
// every successful BeginLoadMore, whether or not the fetch succeeded.
func (c *Cache) EndLoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadingMore = false
}

// ApplyReset replaces the sequence with res. Stale tags are discarded.
func (c *Cache) ApplyReset(gen Generation, res *PageResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.generation {
		return false
	}

	c.posts = make([]Post, 0, len(res.Books))
	c.seen = make(map[string]struct{}, len(res.Books))
	for _, p := range res.Books {
		if _, dup := c.seen[p.ID]; dup {
			continue
		}
		c.posts = append(c.posts, p)
		c.seen[p.ID] = struct{}{}
	}
	c.currentPage = res.CurrentPage
	c.hasMore = res.CurrentPage < res.TotalPages
	return true
}

// ApplyAppend merges res into the sequence. Entries already present keep
// their position; only unseen posts are appended, in server order, which
// makes re-applying the same page a no-op. Stale tags are discarded.
func (c *Cache) ApplyAppend(gen Generation, res *PageResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.generation {
		return false
	}

	for _, p := range res.Books {
		if _, dup := c.seen[p.ID]; dup {
			continue
		}
		c.posts = append(c.posts, p)
		c.seen[p.ID] = struct{}{}
	}
	c.currentPage = res.CurrentPage
	c.hasMore = res.CurrentPage < res.TotalPages
	return true
}

// RemoveByID drops the entry with the given ID, if present.
func (c *Cache) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.seen[id]; !ok {
		return false
	}
	delete(c.seen, id)
	for i, p := range c.posts {
		if p.ID == id {
			c.posts = append(c.posts[:i], c.posts[i+1:]...)
			break
		}
	}
	return true
}

// Snapshot returns a copy of the current sequence.
func (c *Cache) Snapshot() []Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Post, len(c.posts))
	copy(out, c.posts)
	return out
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.posts)
}

func (c *Cache) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage
}

func (c *Cache) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}
