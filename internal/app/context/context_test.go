package appctx

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

const testFetchValue = "hello"

type ctxKey struct{}

func newTestContext() *Context {
	return New(context.Background(), nil)
}

// --- Context tests ---

func TestNew_Options(t *testing.T) {
	t.Parallel()
	p := &domain.Principal{AccountID: "jane", ID: 7, OpenSocialID: "os-7"}

	c := New(context.Background(), "params",
		WithPrincipal(p),
		WithClientID("mobile"),
		WithActionID("getGalleryItems"),
	)

	if c.Params() != "params" {
		t.Fatalf("Params() = %v, want %q", c.Params(), "params")
	}
	if c.Principal() != p {
		t.Fatalf("Principal() = %v, want %v", c.Principal(), p)
	}
	if c.ClientID() != "mobile" {
		t.Fatalf("ClientID() = %q, want %q", c.ClientID(), "mobile")
	}
	if c.ActionID() != "getGalleryItems" {
		t.Fatalf("ActionID() = %q, want %q", c.ActionID(), "getGalleryItems")
	}
}

func TestNew_NoPrincipal(t *testing.T) {
	t.Parallel()
	c := newTestContext()

	if c.Principal() != nil {
		t.Fatalf("Principal() = %v, want nil", c.Principal())
	}
}

func TestParamsAs(t *testing.T) {
	t.Parallel()
	c := New(context.Background(), 42)

	v, err := ParamsAs[int](c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}

	_, err = ParamsAs[string](c)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got error %v, want ErrTypeMismatch", err)
	}
}

func TestWithContext_SharesState(t *testing.T) {
	t.Parallel()
	c := newTestContext()
	key := NewStateKey[string]("shared")

	derived := c.WithContext(context.WithValue(c, ctxKey{}, "tx"))
	key.Put(derived, "from derived")

	got, ok := key.Get(c)
	if !ok || got != "from derived" {
		t.Fatalf("Get() = (%q, %v), want (%q, true)", got, ok, "from derived")
	}
	if derived.Value(ctxKey{}) != "tx" {
		t.Fatal("derived context lost its value")
	}
	if c.Value(ctxKey{}) != nil {
		t.Fatal("original context picked up derived value")
	}
}

func TestNew_FreshStatePerInvocation(t *testing.T) {
	t.Parallel()
	key := NewStateKey[int]("n")

	first := newTestContext()
	key.Put(first, 1)

	second := newTestContext()
	if _, ok := key.Get(second); ok {
		t.Fatal("state leaked between contexts")
	}
}

// --- GetOrFetch tests ---

func TestGetOrFetch_CacheMiss(t *testing.T) {
	t.Parallel()
	c := newTestContext()
	calls := 0

	val, err := GetOrFetch(c, "key", func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != testFetchValue {
		t.Fatalf("got %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CacheHit(t *testing.T) {
	t.Parallel()
	c := newTestContext()
	calls := 0

	fetchFn := func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	}

	_, _ = GetOrFetch(c, "key", fetchFn)
	val, err := GetOrFetch(c, "key", fetchFn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != testFetchValue {
		t.Fatalf("got %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()
	c := newTestContext()
	calls := 0
	fetchErr := errors.New("fetch failed")

	fetchFn := func(_ context.Context) (string, error) {
		calls++
		return "", fetchErr
	}

	_, _ = GetOrFetch(c, "key", fetchFn)
	val, err := GetOrFetch(c, "key", fetchFn)

	if !errors.Is(err, fetchErr) {
		t.Fatalf("got error %v, want %v", err, fetchErr)
	}
	if val != "" {
		t.Fatalf("got %q, want empty string", val)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	c := newTestContext()

	_, _ = GetOrFetch(c, "key", func(_ context.Context) (int, error) { return 1, nil })
	_, err := GetOrFetch(c, "key", func(_ context.Context) (string, error) { return "x", nil })

	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got error %v, want ErrTypeMismatch", err)
	}
}

func TestGetOrFetch_ZeroValue(t *testing.T) {
	t.Parallel()
	c := newTestContext()

	val, err := GetOrFetch(c, "key", func(_ context.Context) (int, error) { return 0, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 0 {
		t.Fatalf("got %d, want 0", val)
	}

	// Second call should return cached zero value.
	calls := 0
	val, err = GetOrFetch(c, "key", func(_ context.Context) (int, error) {
		calls++
		return 99, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 0 {
		t.Fatalf("got %d, want cached 0", val)
	}
	if calls != 0 {
		t.Fatalf("fetchFn should not be called on cache hit")
	}
}

// --- StateKey tests ---

func TestStateKey_PutGet(t *testing.T) {
	t.Parallel()
	c := newTestContext()
	key := NewStateKey[*domain.Principal]("target")

	if _, ok := key.Get(c); ok {
		t.Fatal("Get() on empty state = true, want false")
	}

	want := &domain.Principal{ID: 3}
	key.Put(c, want)

	got, ok := key.Get(c)
	if !ok || got != want {
		t.Fatalf("Get() = (%v, %v), want (%v, true)", got, ok, want)
	}
}

func TestStateKey_GetAfterFailedFetch(t *testing.T) {
	t.Parallel()
	c := newTestContext()
	key := NewStateKey[string]("lookup")

	_, err := key.GetOrFetch(c, func(_ context.Context) (string, error) {
		return "", domain.ErrNotFound
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got error %v, want ErrNotFound", err)
	}
	if _, ok := key.Get(c); ok {
		t.Fatal("Get() after failed fetch = true, want false")
	}

	key.Put(c, "recovered")
	if got, ok := key.Get(c); !ok || got != "recovered" {
		t.Fatalf("Get() = (%q, %v), want (%q, true)", got, ok, "recovered")
	}
}

func TestStateKey_WrongTypeReportsMissing(t *testing.T) {
	t.Parallel()
	c := newTestContext()

	NewStateKey[int]("k").Put(c, 1)
	if _, ok := NewStateKey[string]("k").Get(c); ok {
		t.Fatal("Get() with wrong type = true, want false")
	}
}
