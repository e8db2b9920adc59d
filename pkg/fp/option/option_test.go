package option

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/linqtools/pkg/fp"
)

func samples() []Option[int] {
	return []Option[int]{Some(0), Some(5), Some(-3), None[int]()}
}

func half(v int) Option[int] {
	if v%2 != 0 {
		return None[int]()
	}
	return Some(v / 2)
}

func positive(v int) Option[int] {
	if v <= 0 {
		return None[int]()
	}
	return Some(v)
}

func TestMap_Identity(t *testing.T) {
	t.Parallel()

	for _, x := range samples() {
		assert.Equal(t, x, Map(x, func(v int) int { return v }))
	}
}

func TestMap_Composition(t *testing.T) {
	t.Parallel()

	f := func(v int) int { return v + 1 }
	g := strconv.Itoa

	for _, x := range samples() {
		assert.Equal(t, Map(x, func(v int) string { return g(f(v)) }), Map(Map(x, f), g))
	}
}

func TestBind_Laws(t *testing.T) {
	t.Parallel()

	for _, v := range []int{-4, 0, 3, 8} {
		assert.Equal(t, half(v), Bind(Some(v), half), "left identity for %d", v)
	}

	for _, x := range samples() {
		assert.Equal(t, x, Bind(x, Some[int]), "right identity")
		assert.Equal(t,
			Bind(Bind(x, half), positive),
			Bind(x, func(v int) Option[int] { return Bind(half(v), positive) }),
			"associativity")
	}
}

func TestNone_Absorbs(t *testing.T) {
	t.Parallel()

	called := false
	mapped := Map(None[int](), func(v int) int { called = true; return v })
	bound := Bind(None[int](), func(v int) Option[string] { called = true; return Some("x") })

	assert.Equal(t, None[int](), mapped)
	assert.Equal(t, None[string](), bound)
	assert.False(t, called)
}

func TestBind_CanOnlyNarrow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, None[int](), Bind(Some(3), half))
	assert.Equal(t, Some(4), Bind(Some(8), half))
	assert.Equal(t, None[int](), Bind(Some(8), func(int) Option[int] { return nil }),
		"a nil option from the binder is None")
}

func TestWhere(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }
	always := func(int) bool { return true }

	assert.Equal(t, Some(4), Some(4).Where(even))
	assert.Equal(t, None[int](), Some(3).Where(even))
	assert.Equal(t, None[int](), None[int]().Where(always))
	assert.Equal(t, None[int](), Where[int](nil, always))
}

func TestGetOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Some(5).GetOrDefault(0))
	assert.Equal(t, 0, None[int]().GetOrDefault(0))

	calls := 0
	lazy := func() int { calls++; return 9 }
	assert.Equal(t, 5, Some(5).GetOrElse(lazy))
	assert.Equal(t, 0, calls, "fallback evaluated for Some")
	assert.Equal(t, 9, None[int]().GetOrElse(lazy))
	assert.Equal(t, 1, calls)
}

func TestThrowOnNone(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		assert.Equal(t, 5, Some(5).ThrowOnNone())
	})

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "panic value is not an error")
		assert.ErrorIs(t, err, fp.ErrNotFound)
	}()
	None[int]().ThrowOnNone()
	t.Fatal("ThrowOnNone returned for None")
}

func TestThrowOnNoneWith(t *testing.T) {
	t.Parallel()

	custom := errors.New("missing user")
	assert.PanicsWithValue(t, custom, func() {
		None[string]().ThrowOnNoneWith(func() error { return custom })
	})
	assert.Equal(t, "u", Some("u").ThrowOnNoneWith(func() error { return custom }))
}

func TestOr_IsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	alt := func() Option[int] { calls++; return Some(2) }

	assert.Equal(t, Some(1), Some(1).Or(alt))
	assert.Equal(t, 0, calls)
	assert.Equal(t, Some(2), None[int]().Or(alt))
	assert.Equal(t, 1, calls)
	assert.Equal(t, None[int](), None[int]().Or(func() Option[int] { return nil }))
}

func TestSome_RejectsNil(t *testing.T) {
	t.Parallel()

	var p *int
	assert.PanicsWithError(t, "option.Some: nil value", func() { Some(p) })
	assert.Equal(t, None[*int](), FromNullable(p))

	v := 3
	assert.Equal(t, Some(&v), FromNullable(&v))
}

func TestFromPtrAndToPtr(t *testing.T) {
	t.Parallel()

	v := 3
	assert.Equal(t, Some(3), FromPtr(&v))
	assert.Equal(t, None[int](), FromPtr[int](nil))

	p := ToPtr(Some(3))
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)
	assert.Nil(t, ToPtr(None[int]()))
}

func TestFromComma(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}
	a, okA := m["a"]
	assert.Equal(t, Some(1), FromComma(a, okA))
	b, okB := m["b"]
	assert.Equal(t, None[int](), FromComma(b, okB))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	describe := func(o Option[int]) string {
		return Match(o, strconv.Itoa, func() string { return "none" })
	}

	assert.Equal(t, "7", describe(Some(7)))
	assert.Equal(t, "none", describe(None[int]()))
	assert.Equal(t, "none", describe(nil))
}

func TestSideEffects(t *testing.T) {
	t.Parallel()

	var log []string
	Some(1).
		WhenSome(func(v int) { log = append(log, "some "+strconv.Itoa(v)) }).
		WhenNone(func() { log = append(log, "none") })
	None[int]().
		WhenSome(func(v int) { log = append(log, "some") }).
		WhenNone(func() { log = append(log, "none") })

	assert.Equal(t, []string{"some 1", "none"}, log)
}

func TestSliceAllAndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{4}, Some(4).Slice())
	assert.Empty(t, None[int]().Slice())
	assert.Equal(t, []int{4}, slices.Collect(Some(4).All()))
	assert.Empty(t, slices.Collect(None[int]().All()))
	assert.Equal(t, "4", Some(4).String())
	assert.Equal(t, "", None[int]().String())
}

func TestBindProjectAndZip(t *testing.T) {
	t.Parallel()

	sum := BindProject(Some(8), half, func(a, b int) int { return a + b })
	assert.Equal(t, Some(12), sum)
	assert.Equal(t, None[int](), BindProject(Some(3), half, func(a, b int) int { return a + b }))

	assert.Equal(t, Some(fp.MakePair(1, "a")), Zip(Some(1), Some("a")))
	assert.Equal(t, None[fp.Pair[int, string]](), Zip(None[int](), Some("a")))
	assert.Equal(t, None[fp.Pair[int, string]](), Zip(Some(1), None[string]()))
}

type named interface{ Name() string }

type user struct{ name string }

func (u user) Name() string { return u.name }

func TestAs(t *testing.T) {
	t.Parallel()

	var v any = user{name: "ann"}
	n := As[any, named](Some(v))
	require.True(t, n.IsSome())
	assert.Equal(t, "ann", n.ThrowOnNone().Name())

	assert.True(t, As[any, named](Some[any](42)).IsNone())
}

func TestFirstOrNoneAndValues(t *testing.T) {
	t.Parallel()

	values := slices.Values([]int{1, 3, 6, 8})
	assert.Equal(t, Some(6), FirstOrNone(values, func(v int) bool { return v%2 == 0 }))
	assert.Equal(t, None[int](), FirstOrNone(values, func(v int) bool { return v > 10 }))

	opts := slices.Values([]Option[int]{Some(1), None[int](), nil, Some(3)})
	assert.Equal(t, []int{1, 3}, slices.Collect(Values(opts)))
}

func TestChoose(t *testing.T) {
	t.Parallel()

	classify := func(v int) Option[string] {
		return Choose(v,
			When(func(v int) bool { return v < 0 }, func(int) string { return "negative" }),
			When(func(v int) bool { return v == 0 }, func(int) string { return "zero" }),
		)
	}
	assert.Equal(t, Some("negative"), classify(-1))
	assert.Equal(t, Some("zero"), classify(0))
	assert.Equal(t, None[string](), classify(1))

	withDefault := Choose(5,
		When(func(v int) bool { return v < 0 }, strconv.Itoa),
		Default[int](func(v int) string { return "other " + strconv.Itoa(v) }))
	assert.Equal(t, Some("other 5"), withDefault)
}

func TestWhiteSpaceToNone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, None[string](), WhiteSpaceToNone(""))
	assert.Equal(t, None[string](), WhiteSpaceToNone(" \t\n"))
	assert.Equal(t, Some(" a "), WhiteSpaceToNone(" a "))
}

func TestFirstOrNone_SkipsNil(t *testing.T) {
	t.Parallel()

	one, two := 1, 2
	ptrs := slices.Values([]*int{nil, &one, nil, &two})
	calls := 0
	always := func(*int) bool { calls++; return true }

	assert.Equal(t, Some(&one), FirstOrNone(ptrs, always))
	assert.Equal(t, 1, calls, "predicate called for a nil element")
	assert.Equal(t, None[*int](), FirstOrNone(slices.Values([]*int{nil, nil}), always))
}
