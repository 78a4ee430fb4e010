package bucket

// Hook transforms a value on its way into or out of a Bucket.
type Hook func(value any) any

// OnGet registers fn to run on every value read from key. Hooks for the
// same key run in registration order, each receiving the previous hook's
// output. The registry is keyed "<key>-get", so hooks bind to the exact
// key expression used at call sites, not to the resolved location.
func (b *Bucket) OnGet(key string, fn Hook) {
	b.register(key+"-get", fn)
}

// OnSet registers fn to run on every value written to key, before the
// write reaches the underlying map.
func (b *Bucket) OnSet(key string, fn Hook) {
	b.register(key+"-set", fn)
}

// FlushHooks removes every registered hook.
func (b *Bucket) FlushHooks() {
	b.hooks = make(map[string][]Hook)
}

func (b *Bucket) register(slot string, fn Hook) {
	if fn == nil {
		return
	}
	b.hooks[slot] = append(b.hooks[slot], fn)
}

func (b *Bucket) applyHooks(slot string, value any) any {
	for _, fn := range b.hooks[slot] {
		value = fn(value)
	}
	return value
}
