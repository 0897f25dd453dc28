package motion

// Completion is the contract between a tween and its completion handle. The
// engine calls exactly one of Resolve (stop, natural completion) or Reject
// (cancel) per play segment, never both, and clears its reference afterward
// so a handle can never fire twice for one segment.
type Completion interface {
	Resolve(Result)
	Reject(Result)
}

// CompletionFactory constructs the completion handle for one configuration.
// Set [Config.NewCompletion] to substitute a custom promise-like
// implementation; the default is [NewPromise].
type CompletionFactory func() Completion

const (
	promisePending = iota
	promiseResolved
	promiseRejected
)

// Promise is the default [Completion]: a settle-once continuation holder in
// the then/catch style. Callbacks registered after settlement run
// immediately; callbacks registered before run synchronously at settlement,
// in registration order. There is no locking; the engine is single-threaded
// by contract.
type Promise struct {
	state     uint8
	result    Result
	onResolve []func(Result)
	onReject  []func(Result)
}

// NewPromise returns a pending Promise. It is the default
// [CompletionFactory].
func NewPromise() Completion { return &Promise{} }

// Then registers a callback for successful completion and returns the
// promise for chaining.
func (p *Promise) Then(fn func(Result)) *Promise {
	switch p.state {
	case promiseResolved:
		fn(p.result)
	case promisePending:
		p.onResolve = append(p.onResolve, fn)
	}
	return p
}

// Catch registers a callback for cancellation and returns the promise for
// chaining.
func (p *Promise) Catch(fn func(Result)) *Promise {
	switch p.state {
	case promiseRejected:
		fn(p.result)
	case promisePending:
		p.onReject = append(p.onReject, fn)
	}
	return p
}

// Settled reports whether the promise has been resolved or rejected.
func (p *Promise) Settled() bool { return p.state != promisePending }

// Resolve settles the promise successfully and runs the Then callbacks.
// A settled promise ignores further Resolve and Reject calls.
func (p *Promise) Resolve(r Result) {
	if p.state != promisePending {
		return
	}
	p.state = promiseResolved
	p.result = r
	fns := p.onResolve
	p.onResolve, p.onReject = nil, nil
	for _, fn := range fns {
		fn(r)
	}
}

// Reject settles the promise as cancelled and runs the Catch callbacks.
// A settled promise ignores further Resolve and Reject calls.
func (p *Promise) Reject(r Result) {
	if p.state != promisePending {
		return
	}
	p.state = promiseRejected
	p.result = r
	fns := p.onReject
	p.onResolve, p.onReject = nil, nil
	for _, fn := range fns {
		fn(r)
	}
}
