package container

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestContainer() *SimpleContainer {
	return NewSimpleContainer(slog.New(slog.DiscardHandler))
}

type widget struct {
	Label string
}

func TestGetBean_SameReferenceTwice(t *testing.T) {
	req := require.New(t)
	c := newTestContainer()
	req.NoError(c.Register("widget", widget{}))

	first, err := c.GetBean("widget")
	req.NoError(err)
	second, err := c.GetBean("widget")
	req.NoError(err)

	req.Same(first.(*widget), second.(*widget))
}

func TestGetBean_UnregisteredName(t *testing.T) {
	c := newTestContainer()
	_, err := c.GetBean("ghost")
	require.ErrorIs(t, err, ErrBeanNotRegistered)
}

func TestRegister_PointerAndValuePrototypesAgree(t *testing.T) {
	req := require.New(t)
	c := newTestContainer()

	req.NoError(c.Register("by-value", widget{}))
	req.NoError(c.Register("by-pointer", &widget{}))

	byValue := c.MustGetBean("by-value")
	byPointer := c.MustGetBean("by-pointer")

	// both registrations produce a *widget over the zero value
	req.IsType(&widget{}, byValue)
	req.IsType(&widget{}, byPointer)
	req.Equal("", byValue.(*widget).Label)
}

func TestRegister_Rejections(t *testing.T) {
	req := require.New(t)
	c := newTestContainer()
	req.NoError(c.Register("widget", widget{}))

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"duplicate name", func() error { return c.Register("widget", widget{}) }, ErrNameTaken},
		{"duplicate via factory", func() error { return c.RegisterFactory("widget", func() any { return 1 }) }, ErrNameTaken},
		{"non-struct int", func() error { return c.Register("port", 8080) }, ErrNotAStruct},
		{"non-struct slice", func() error { return c.Register("list", []string{}) }, ErrNotAStruct},
		{"nil prototype", func() error { return c.Register("nothing", nil) }, ErrNotAStruct},
		{"nil factory", func() error { return c.RegisterFactory("lazy", nil) }, ErrNilFactory},
		{"empty name", func() error { return c.Register("", widget{}) }, ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), tt.want)
		})
	}
}

func TestRegisterFactory_RunsAtMostOnce(t *testing.T) {
	req := require.New(t)
	c := newTestContainer()

	var builds atomic.Int64
	req.NoError(c.RegisterFactory("counted", func() any {
		builds.Add(1)
		return &widget{Label: "built"}
	}))

	// concurrent first access: every caller must get the same instance and
	// the factory must run exactly once
	const callers = 32
	start := make(chan struct{})
	results := make([]any, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = c.MustGetBean("counted")
		}()
	}
	close(start)
	wg.Wait()

	req.EqualValues(1, builds.Load())
	for _, got := range results {
		req.Same(results[0].(*widget), got.(*widget))
	}
}

func TestMustGetBean_PanicsOnUnknown(t *testing.T) {
	c := newTestContainer()
	require.Panics(t, func() { c.MustGetBean("ghost") })
}

func TestNames_SortedAndIndependentOfConstruction(t *testing.T) {
	req := require.New(t)
	c := newTestContainer()
	req.NoError(c.Register("zeta", widget{}))
	req.NoError(c.Register("alpha", widget{}))
	req.NoError(c.RegisterFactory("mid", func() any { return &widget{} }))

	req.Equal([]string{"alpha", "mid", "zeta"}, c.Names())

	// resolving does not change the listing
	c.MustGetBean("alpha")
	req.Equal([]string{"alpha", "mid", "zeta"}, c.Names())
}

func TestTypeName(t *testing.T) {
	req := require.New(t)
	req.Equal("widget", TypeName(widget{}))
	req.Equal("widget", TypeName(&widget{}))
	req.Equal("nil", TypeName(nil))
}

func TestDemo_Runs(t *testing.T) {
	var sb strings.Builder
	Demo(&sb)

	out := sb.String()
	require.Contains(t, out, "lesson 3/3")
	require.Contains(t, out, "same reference: true")
	require.Contains(t, out, "bean name already registered")
	require.Contains(t, out, "must be a struct")
	require.Contains(t, out, "bean not registered")
}
