package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/form"
)

func TestField_CurrentValue(t *testing.T) {
	t.Parallel()

	options := []form.Option{{Label: "--", Value: ""}, {Label: "One", Value: "1"}, {Label: "Two", Value: "2"}}

	t.Run("scalar kinds read the raw value", func(t *testing.T) {
		for _, f := range []*form.Field{
			form.Text("a", "x"),
			form.Textarea("a", "x"),
			form.Password("a", "x"),
			form.Hidden("a", "x"),
			form.File("a", "x"),
			form.Radio("a", "x"),
			form.Checkbox("a", "x"),
		} {
			assert.Equal(t, "x", f.CurrentValue(), f.String())
		}
	})

	t.Run("select reads the selected option", func(t *testing.T) {
		assert.Equal(t, "2", form.Select("n", 2, options...).CurrentValue())
		assert.Equal(t, "", form.Select("n", 0, options...).CurrentValue())
	})

	t.Run("select without selection is empty", func(t *testing.T) {
		assert.Equal(t, "", form.Select("n", form.NoSelection, options...).CurrentValue())
		assert.Equal(t, "", form.Select("n", 7, options...).CurrentValue())
	})

	t.Run("select ignores raw value", func(t *testing.T) {
		f := form.Select("n", 1, options...)
		f.Value = "stale"
		assert.Equal(t, "1", f.CurrentValue())
	})
}

func TestField_EffectiveKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, form.KindText, form.Text("a", "").EffectiveKind())
	assert.Equal(t, form.KindHidden, form.Text("a", "").Hide().EffectiveKind())
	assert.True(t, form.Text("a", "").Disable().Disabled)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := form.ParseKind("select-one")
	require.NoError(t, err)
	assert.Equal(t, form.KindSelectOne, k)

	_, err = form.ParseKind("select-multiple")
	assert.ErrorIs(t, err, form.ErrUnknownKind)
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	first := form.Text("email", "a@example.com")
	dup := form.Text("email", "b@example.com")
	s := form.NewSnapshot("signup", first, nil, form.Password("password", "secret"), dup)

	assert.Equal(t, "signup", s.Name())
	require.Len(t, s.Fields(), 3)

	got, ok := s.Lookup("email")
	require.True(t, ok)
	assert.Same(t, first, got, "first field with a name wins")

	_, ok = s.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, map[string]string{"email": "a@example.com", "password": "secret"}, s.Values())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	s := form.NewSnapshot("f", form.Text("a", "1"))

	f, ok := form.Resolve(s, "a")
	require.True(t, ok)
	assert.Equal(t, "1", f.CurrentValue())

	_, ok = form.Resolve(s, "b")
	assert.False(t, ok)

	_, ok = form.Resolve(nil, "a")
	assert.False(t, ok)

	_, ok = form.Resolve(s, "")
	assert.False(t, ok)
}
