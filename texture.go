package xrview

// TextureCache memoizes loaded textures by URI. Entries are never
// evicted; the variant list is small and fixed, so the cache stays
// bounded for the life of the viewer. Failed loads are never cached.
//
// Concurrent requests for a URI whose load is still in flight share that
// load: every caller's done callback is queued and invoked once the
// single underlying load settles.
type TextureCache struct {
	renderer ModelRenderer
	loaded   map[string]Texture
	pending  map[string][]func(Texture, error)
}

// NewTextureCache creates an empty cache backed by the renderer's loader.
func NewTextureCache(renderer ModelRenderer) *TextureCache {
	return &TextureCache{
		renderer: renderer,
		loaded:   make(map[string]Texture),
		pending:  make(map[string][]func(Texture, error)),
	}
}

// Len returns the number of successfully cached textures.
func (c *TextureCache) Len() int {
	return len(c.loaded)
}

// Get delivers the texture for uri to done. A cached handle is delivered
// synchronously; otherwise done is queued on the (possibly shared)
// in-flight load and invoked when it settles. Load errors are delivered
// to done and not cached.
func (c *TextureCache) Get(uri string, done func(Texture, error)) {
	if tex, ok := c.loaded[uri]; ok {
		done(tex, nil)
		return
	}
	if waiters, ok := c.pending[uri]; ok {
		c.pending[uri] = append(waiters, done)
		return
	}
	c.pending[uri] = []func(Texture, error){done}
	c.renderer.CreateTexture(uri, func(tex Texture, err error) {
		waiters := c.pending[uri]
		delete(c.pending, uri)
		if err == nil {
			c.loaded[uri] = tex
		}
		for _, w := range waiters {
			w(tex, err)
		}
	})
}

// TextureCycler steps the model through its texture variants. Index 0 is
// always the model's original material, restored by applying a nil
// texture — never fetched through the cache. The remaining indices are
// the configured variant URIs.
type TextureCycler struct {
	renderer ModelRenderer
	cache    *TextureCache

	variants []string // variants[0] == "" is the original-material slot
	index    int
	gen      uint64 // invalidates in-flight loads superseded by a later cycle
	enabled  bool

	// OnError, when set, receives texture load failures after the index
	// rollback. Nil by default; failures still produce a stderr warning.
	OnError func(err error)
}

// NewTextureCycler creates a cycler over the given variant URIs. The
// original material occupies index 0 implicitly. A cycler with no URIs,
// or one disabled because the model has no texture slot, cycles nowhere.
func NewTextureCycler(renderer ModelRenderer, cache *TextureCache, uris []string) *TextureCycler {
	variants := make([]string, 1, len(uris)+1)
	variants[0] = ""
	variants = append(variants, uris...)
	return &TextureCycler{
		renderer: renderer,
		cache:    cache,
		variants: variants,
		enabled:  true,
	}
}

// Index returns the current variant index. It reflects the texture that
// is actually applied (or being applied); a failed load rolls it back.
func (c *TextureCycler) Index() int {
	return c.index
}

// SetEnabled turns cycling on or off. The viewer disables the cycler when
// the loaded model exposes no texture slot.
func (c *TextureCycler) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Cycle advances to the next variant and applies it. Advancing onto the
// original-material slot restores via a nil texture with no cache fetch.
// Advancing onto a URI variant fetches through the cache; if the load
// fails the index rolls back to its pre-click value and the applied
// texture is left untouched. A cycle that supersedes a still-loading
// variant leaves the stale load's result unapplied.
func (c *TextureCycler) Cycle() {
	if !c.enabled || len(c.variants) < 2 {
		return
	}
	prev := c.index
	next := (c.index + 1) % len(c.variants)
	c.gen++

	uri := c.variants[next]
	if uri == "" {
		c.index = next
		c.renderer.ApplyTexture(nil)
		c.renderer.RequestRender()
		return
	}

	c.index = next
	gen := c.gen
	c.cache.Get(uri, func(tex Texture, err error) {
		if gen != c.gen {
			return // superseded by a later cycle
		}
		if err != nil {
			c.index = prev
			warnf("texture %q failed to load: %v", uri, err)
			if c.OnError != nil {
				c.OnError(err)
			}
			return
		}
		c.renderer.ApplyTexture(tex)
		c.renderer.RequestRender()
	})
}
