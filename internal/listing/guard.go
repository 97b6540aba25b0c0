package listing

import "sync/atomic"

// Guard discards stale fetch results. Every fetch begins with Begin, which
// advances the generation; a result may only be committed if no newer fetch
// has begun since. This closes the month-navigation race where a slow fetch
// for a previously selected month resolves after the user has moved on.
type Guard struct {
	gen atomic.Uint64
}

// Begin marks the start of a fetch and returns its generation token.
func (g *Guard) Begin() uint64 {
	return g.gen.Add(1)
}

// Current reports whether the token still belongs to the newest fetch.
func (g *Guard) Current(token uint64) bool {
	return g.gen.Load() == token
}

// Commit applies fn only if token is still current, and reports whether it
// ran. A superseded fetch is dropped silently.
func (g *Guard) Commit(token uint64, fn func()) bool {
	if !g.Current(token) {
		return false
	}
	fn()
	return true
}
