// Package parsec is the error-accumulating parser combinator substrate
// that parsing (C5) runs on, as Parser[section.Section, V]. It is generic
// over the element type; sectioning (C4, core/section) does not use it and
// is a hand-written stack walk instead.
//
// A Parser[E, V] is a pure function Cursor[E] -> (Cursor[E], Outcome[V]):
// no shared state, no I/O, no mutation of its input. Outcome[V] is either a
// success value or a non-empty set of diagnostics, plus an "unbound"
// sentinel for "this primitive did not match here and I don't yet know
// which high-level error to report". The sentinel is represented as a
// private flag on Outcome, not a diag.Kind, precisely so it cannot leak
// into a diag.Diagnostic returned to a caller: every top-level invocation
// must route through CatchUnbound.
//
// Outcome also carries an "extra" side-channel of diagnostics that survive
// regardless of success or failure. This is how a nested, independently
// error-accumulating construct (a statement block inside a function literal
// or an if/else branch) reports its own internal diagnostics without those
// diagnostics forcing the enclosing expression parse to fail, the same
// "between sibling statements: accumulate" discipline applied one level
// down into expression-embedded statement blocks.
package parsec

import "github.com/avian-lovelace/compiler/core/diag"

// Cursor is the unconsumed suffix of an input sequence. Slicing a Go slice
// is already a pure, allocation-free "advance" operation, so Cursor is
// simply a named slice type rather than an index into a shared buffer.
type Cursor[E any] []E

func (c Cursor[E]) Head() (E, bool) {
	var zero E
	if len(c) == 0 {
		return zero, false
	}
	return c[0], true
}

func (c Cursor[E]) Rest() Cursor[E] {
	if len(c) == 0 {
		return c
	}
	return c[1:]
}

func (c Cursor[E]) Empty() bool { return len(c) == 0 }

// Outcome is the result of running a Parser: a success value, or a failure
// that is either the "unbound" sentinel or a concrete diagnostic list,
// plus, either way, any side-channel diagnostics accumulated along the way.
type Outcome[V any] struct {
	value   V
	ok      bool
	unbound bool
	diags   []diag.Diagnostic
	extra   []diag.Diagnostic
}

// Ok builds a successful Outcome.
func Ok[V any](v V) Outcome[V] { return Outcome[V]{value: v, ok: true} }

// OkWithExtra builds a successful Outcome carrying side-channel diagnostics
// gathered from an independently-accumulating nested construct.
func OkWithExtra[V any](v V, extra []diag.Diagnostic) Outcome[V] {
	return Outcome[V]{value: v, ok: true, extra: extra}
}

// Unbound builds the sentinel "did not match here" Outcome. It must never
// be returned from a top-level parse; CatchUnbound converts it first.
func Unbound[V any]() Outcome[V] { return Outcome[V]{unbound: true} }

// Fail builds a concrete failure Outcome carrying one or more diagnostics.
func Fail[V any](ds ...diag.Diagnostic) Outcome[V] { return Outcome[V]{diags: ds} }

func (o Outcome[V]) IsOk() bool      { return o.ok }
func (o Outcome[V]) IsUnbound() bool { return o.unbound }
func (o Outcome[V]) IsFail() bool    { return !o.ok }
func (o Outcome[V]) Value() V        { return o.value }

// Diagnostics returns the diagnostics that make this Outcome a failure.
// Empty for Ok and for an un-caught Unbound (which carries none by
// construction).
func (o Outcome[V]) Diagnostics() []diag.Diagnostic { return o.diags }

// Extra returns the side-channel diagnostics accumulated from nested
// independently-accumulating constructs, regardless of whether this
// Outcome itself is a success or a failure.
func (o Outcome[V]) Extra() []diag.Diagnostic { return o.extra }

func failOutcome[V any](from outcomeShape) Outcome[V] {
	return Outcome[V]{unbound: from.unbound, diags: from.diags, extra: from.extra}
}

// outcomeShape is the failure-only projection of an Outcome, used to carry
// a failure across a value-type change (Map, Bind, Seq).
type outcomeShape struct {
	unbound bool
	diags   []diag.Diagnostic
	extra   []diag.Diagnostic
}

func shapeOf[V any](o Outcome[V]) outcomeShape {
	return outcomeShape{unbound: o.unbound, diags: o.diags, extra: o.extra}
}

func mergeExtra(a, b []diag.Diagnostic) []diag.Diagnostic {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]diag.Diagnostic, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Parser is a pure function from a cursor to a (possibly advanced) cursor
// and an outcome.
type Parser[E, V any] func(Cursor[E]) (Cursor[E], Outcome[V])

// Pure always succeeds with v and consumes no input.
func Pure[E, V any](v V) Parser[E, V] {
	return func(c Cursor[E]) (Cursor[E], Outcome[V]) { return c, Ok(v) }
}

// Map transforms a successful value; failures pass through unchanged.
func Map[E, V, W any](p Parser[E, V], f func(V) W) Parser[E, W] {
	return func(c Cursor[E]) (Cursor[E], Outcome[W]) {
		rest, out := p(c)
		if !out.IsOk() {
			return rest, failOutcome[W](shapeOf(out))
		}
		return rest, OkWithExtra(f(out.Value()), out.extra)
	}
}

// Bind runs p, then feeds its value to k to build the next parser, which
// runs on p's remainder. The cursor always reflects the last parser that
// actually ran, success or failure. Side-channel diagnostics from both
// stages are merged on success.
func Bind[E, V, W any](p Parser[E, V], k func(V) Parser[E, W]) Parser[E, W] {
	return func(c Cursor[E]) (Cursor[E], Outcome[W]) {
		rest, out := p(c)
		if !out.IsOk() {
			return rest, failOutcome[W](shapeOf(out))
		}
		rest2, out2 := k(out.Value())(rest)
		out2.extra = mergeExtra(out.extra, out2.extra)
		return rest2, out2
	}
}

// Seq runs p then q on the remainder, discarding p's value and yielding q's.
func Seq[E, V, W any](p Parser[E, V], q Parser[E, W]) Parser[E, W] {
	return Bind(p, func(V) Parser[E, W] { return q })
}

// SeqKeepLeft runs p then q, keeping p's value (used when q is a required
// terminator, e.g. a closing bracket, whose value carries no information).
func SeqKeepLeft[E, V, W any](p Parser[E, V], q Parser[E, W]) Parser[E, V] {
	return Bind(p, func(v V) Parser[E, V] {
		return Map(q, func(W) V { return v })
	})
}

// Pair combines two values produced in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// And runs p then q, pairing both values.
func And[E, A, B any](p Parser[E, A], q Parser[E, B]) Parser[E, Pair[A, B]] {
	return Bind(p, func(a A) Parser[E, Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
	})
}

// Alt runs p; on success, returns it. On failure, if p consumed no input it
// tries q on the original cursor (predictive choice); if p consumed input
// before failing, that failure is final (committed choice) regardless of
// whether it is the Unbound sentinel or a concrete diagnostic list.
func Alt[E, V any](p, q Parser[E, V]) Parser[E, V] {
	return func(c Cursor[E]) (Cursor[E], Outcome[V]) {
		rest, out := p(c)
		if out.IsOk() {
			return rest, out
		}
		if len(rest) == len(c) {
			return q(c)
		}
		return rest, out
	}
}

// NextIf consumes the head element if pred matches it, yielding the value
// pred extracts. On mismatch it fails Unbound without consuming input.
func NextIf[E, V any](pred func(E) (V, bool)) Parser[E, V] {
	return func(c Cursor[E]) (Cursor[E], Outcome[V]) {
		head, ok := c.Head()
		if !ok {
			return c, Unbound[V]()
		}
		v, matched := pred(head)
		if !matched {
			return c, Unbound[V]()
		}
		return c.Rest(), Ok(v)
	}
}

// ZeroOrMore greedily applies p until it fails without consuming input; that
// trailing non-consuming failure is swallowed. A failure that did consume
// input is fatal and propagates (a "committed failure inside a repetition").
func ZeroOrMore[E, V any](p Parser[E, V]) Parser[E, []V] {
	return func(c Cursor[E]) (Cursor[E], Outcome[[]V]) {
		var values []V
		var extra []diag.Diagnostic
		cur := c
		for {
			rest, out := p(cur)
			extra = mergeExtra(extra, out.extra)
			if out.IsOk() {
				values = append(values, out.Value())
				cur = rest
				continue
			}
			if len(rest) == len(cur) {
				return cur, OkWithExtra(values, extra)
			}
			shape := shapeOf(out)
			shape.extra = extra
			return rest, failOutcome[[]V](shape)
		}
	}
}

// Option is the presence-or-absence result of ZeroOrOne.
type Option[V any] struct {
	Some  bool
	Value V
}

// ZeroOrOne applies p once; a non-consuming failure yields an empty Option
// rather than propagating. A consuming failure is still fatal.
func ZeroOrOne[E, V any](p Parser[E, V]) Parser[E, Option[V]] {
	return func(c Cursor[E]) (Cursor[E], Outcome[Option[V]]) {
		rest, out := p(c)
		if out.IsOk() {
			return rest, OkWithExtra(Option[V]{Some: true, Value: out.Value()}, out.extra)
		}
		if len(rest) == len(c) {
			return c, Ok(Option[V]{})
		}
		return rest, failOutcome[Option[V]](shapeOf(out))
	}
}

// RunToEnd runs p against input and requires the remainder be empty.
// Success with leftover input becomes an Unbound failure (the caller did
// not consume the whole sequence and has no named diagnostic for that yet);
// a failure from p itself passes through untouched.
func RunToEnd[E, V any](p Parser[E, V], input Cursor[E]) Outcome[V] {
	rest, out := p(input)
	if !out.IsOk() {
		return out
	}
	if !rest.Empty() {
		return Outcome[V]{unbound: true, extra: out.extra}
	}
	return out
}

// CatchUnbound converts the Unbound sentinel into a concrete diagnostic
// built by mk, tied to whatever range the caller supplies. Every top-level
// parser invocation must route its result through this before returning it
// to a caller outside the core.
func CatchUnbound[V any](out Outcome[V], mk func() diag.Diagnostic) Outcome[V] {
	if !out.IsUnbound() {
		return out
	}
	return Outcome[V]{diags: []diag.Diagnostic{mk()}, extra: out.extra}
}
