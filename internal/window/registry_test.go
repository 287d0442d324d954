package window_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmacinski/veil/internal/window"
)

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := window.NewRegistry[string, int](window.NormalizeName)
	require.NoError(t, r.Register("main menu", 1, false))

	err := r.Register("mainmenu", 2, false)
	require.ErrorIs(t, err, window.ErrDuplicateIdentity)

	var dup *window.DuplicateIdentityError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "mainmenu", dup.Identity)
	require.Equal(t, 1, dup.Existing)

	v, ok := r.Lookup(" main\tmenu ")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 1, r.Len())
}

func TestRegistryRegisterSameValueTwice(t *testing.T) {
	r := window.NewRegistry[string, int](nil)
	require.NoError(t, r.Register("a", 1, false))
	require.NoError(t, r.Register("a", 1, false))
	require.Equal(t, 1, r.Len())
}

func TestRegistryAllowMultiple(t *testing.T) {
	tests := []struct {
		name          string
		first, second bool
		wantErr       bool
	}{
		{"both allow", true, true, false},
		{"only newcomer allows", false, true, true},
		{"only bound allows", true, false, true},
		{"neither allows", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := window.NewRegistry[string, int](nil)
			require.NoError(t, r.Register("toast", 1, tt.first))
			err := r.Register("toast", 2, tt.second)
			if tt.wantErr {
				require.ErrorIs(t, err, window.ErrDuplicateIdentity)
				require.Equal(t, 1, r.Len())
				return
			}
			require.NoError(t, err)
			v, _ := r.Lookup("toast")
			require.Equal(t, 1, v, "earliest registrant wins lookup")
		})
	}
}

func TestRegistryUnregisterOnlyMatchingValue(t *testing.T) {
	r := window.NewRegistry[string, int](nil)
	require.NoError(t, r.Register("a", 1, false))

	require.False(t, r.Unregister("a", 2))
	require.False(t, r.Unregister("b", 1))
	require.True(t, r.Unregister("a", 1))
	require.False(t, r.Unregister("a", 1))

	_, ok := r.Lookup("a")
	require.False(t, ok)
}

func TestRegistryRename(t *testing.T) {
	r := window.NewRegistry[string, int](window.NormalizeName)
	require.NoError(t, r.Register("foo", 1, false))
	require.NoError(t, r.Register("taken", 2, false))

	require.NoError(t, r.Rename(1, "b a r"))
	_, ok := r.Lookup("foo")
	require.False(t, ok)
	v, ok := r.Lookup("bar")
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.ErrorIs(t, r.Rename(1, "taken"), window.ErrDuplicateIdentity)
	id, _ := r.IdentityOf(1)
	require.Equal(t, "bar", id)

	require.ErrorIs(t, r.Rename(1, "  "), window.ErrEmptyIdentity)
	require.ErrorIs(t, r.Rename(9, "x"), window.ErrNotRegistered)
	require.NoError(t, r.Rename(1, "bar"))
}

func TestRegistryRenameKeepsOrder(t *testing.T) {
	r := window.NewRegistry[string, int](nil)
	require.NoError(t, r.Register("a", 1, false))
	require.NoError(t, r.Register("b", 2, false))
	require.NoError(t, r.Rename(1, "z"))

	all := r.All()
	require.Equal(t, "z", all[0].ID)
	require.Equal(t, "b", all[1].ID)
}

func TestRegistryAllIsSnapshot(t *testing.T) {
	r := window.NewRegistry[string, int](nil)
	require.NoError(t, r.Register("a", 1, false))
	require.NoError(t, r.Register("b", 2, false))

	all := r.All()
	r.Unregister("a", 1)
	require.NoError(t, r.Register("c", 3, false))

	require.Len(t, all, 2)
	require.Equal(t, "a", all[0].ID)
	require.Equal(t, 2, r.Len())
}

func TestRegistryRejectsEmptyIdentity(t *testing.T) {
	r := window.NewRegistry[string, int](window.NormalizeName)
	require.ErrorIs(t, r.Register(" \n", 1, false), window.ErrEmptyIdentity)
}

func TestManagerDuplicateKeepsOriginal(t *testing.T) {
	h := newLiveHarness(t)
	first, _ := h.open("inventory", defaultConfig)
	first.SetOpen(true, true)

	second := h.mgr.NewWindow(window.Named("inventory"), &fakeVisual{}, defaultConfig)
	err := second.Activate()
	require.ErrorIs(t, err, window.ErrDuplicateIdentity)
	require.False(t, second.Active())

	got, ok := h.mgr.LookupName("inventory")
	require.True(t, ok)
	require.Same(t, first, got)
	require.ErrorContains(t, err, "inventory")
}

func TestManagerRename(t *testing.T) {
	h := newLiveHarness(t)
	w, _ := h.open("foo", defaultConfig)
	other, _ := h.open("baz", defaultConfig)

	require.NoError(t, w.Rename("bar"))
	_, ok := h.mgr.LookupName("foo")
	require.False(t, ok)
	got, ok := h.mgr.LookupName("bar")
	require.True(t, ok)
	require.Same(t, w, got)
	require.Equal(t, "bar", w.Name())

	err := w.Rename("baz")
	var dup *window.DuplicateIdentityError
	require.ErrorAs(t, err, &dup)
	require.Same(t, other, dup.Existing)
	require.Equal(t, "bar", w.Name())
}

func TestManagerKindScheme(t *testing.T) {
	h := newHarness(t, window.Options{Scheme: window.SchemeKind, Playing: true})

	w := h.mgr.NewWindow(window.KindOf("inventory"), &fakeVisual{}, defaultConfig)
	require.NoError(t, w.Activate())
	require.ErrorIs(t, w.Rename("bag"), window.ErrRenameUnsupported)

	got, ok := h.mgr.Lookup(window.KindOf("inventory"))
	require.True(t, ok)
	require.Same(t, w, got)

	named := h.mgr.NewWindow(window.Named("inventory"), &fakeVisual{}, defaultConfig)
	require.ErrorIs(t, named.Activate(), window.ErrSchemeMismatch)

	empty := h.mgr.NewWindow(window.KindOf(""), &fakeVisual{}, defaultConfig)
	require.ErrorIs(t, empty.Activate(), window.ErrEmptyIdentity)
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "MainMenu", window.NormalizeName(" Main \t Menu\n"))
	require.Equal(t, "ab", window.Named("a b").String())
}
