package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/rules"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

const signupYAML = `
constants:
  zip: '^\d{5}$'
messages:
  integer: "{0} must be a whole number."
formsets:
  - constants:
      nameLabel: Full name
    forms:
      - name: signup
        fields:
          - property: name
            depends: required, maxlength
            vars:
              maxlength: 10
            args: ["${nameLabel}"]
          - property: zip
            depends: [required, mask]
            vars:
              mask: ${zip}
            msgs:
              mask: "{0} must have five digits."
          - property: age
            depends: integer, intRange
            vars: {min: 18, max: 99}
            args: [Age]
  - locale: fr
    forms:
      - name: signup
        fields:
          - property: name
            depends: required
            msgs:
              required: "{0} est obligatoire."
            args: [Nom]
`

func load(t *testing.T) *ruleset.Resources {
	t.Helper()
	doc, err := ruleset.Parse([]byte(signupYAML), ruleset.FormatYAML)
	require.NoError(t, err)
	res, err := ruleset.New(doc)
	require.NoError(t, err)
	return res
}

func TestResources_RuleSet(t *testing.T) {
	t.Parallel()

	res := load(t)
	set, err := res.RuleSet("signup")
	require.NoError(t, err)
	assert.Equal(t, "signup", set.Name)

	type entry struct {
		kind    rules.Kind
		field   string
		message string
	}
	var got []entry
	for _, e := range set.Entries {
		got = append(got, entry{e.Kind, e.Field, e.Message})
	}
	assert.Equal(t, []entry{
		{rules.KindRequired, "name", "Full name is required."},
		{rules.KindMaxLength, "name", "Full name can not be greater than 10 characters."},
		{rules.KindRequired, "zip", "zip is required."},
		{rules.KindMask, "zip", "zip must have five digits."},
		{rules.KindInteger, "age", "Age must be a whole number."},
		{rules.KindIntRange, "age", "Age is not in the range 18 through 99."},
	}, got)

	mask, ok := set.Entries[3].Params.Param(rules.ParamMask)
	require.True(t, ok)
	assert.Equal(t, `^\d{5}$`, mask)

	max, ok := set.Entries[1].Params.Param(rules.ParamMaxLength)
	require.True(t, ok)
	assert.Equal(t, "10", max)
}

func TestResources_RuleSetFor(t *testing.T) {
	t.Parallel()

	res := load(t)
	locales := res.Locales()
	require.Len(t, locales, 1)
	assert.Equal(t, "fr", locales[0].String())
	assert.Equal(t, []string{"signup"}, res.Forms())

	t.Run("exact locale", func(t *testing.T) {
		set, err := res.RuleSetFor("signup", language.French)
		require.NoError(t, err)
		require.Len(t, set.Entries, 1)
		assert.Equal(t, "Nom est obligatoire.", set.Entries[0].Message)
	})

	t.Run("regional variant falls back to language", func(t *testing.T) {
		set, err := res.RuleSetFor("signup", language.MustParse("fr-CA"))
		require.NoError(t, err)
		assert.Len(t, set.Entries, 1)
	})

	t.Run("unknown locale uses default formset", func(t *testing.T) {
		set, err := res.RuleSetFor("signup", language.German)
		require.NoError(t, err)
		assert.Len(t, set.Entries, 6)
	})

	t.Run("unknown form", func(t *testing.T) {
		_, err := res.RuleSetFor("login", language.French)
		assert.ErrorIs(t, err, ruleset.ErrFormNotFound)
	})
}

func TestResources_ReturnsCopies(t *testing.T) {
	t.Parallel()

	res := load(t)
	set, err := res.RuleSet("signup")
	require.NoError(t, err)
	set.Entries[0].Message = "changed"
	set.Entries[1].Params.(rules.Params)[rules.ParamMaxLength] = "1"

	again, err := res.RuleSet("signup")
	require.NoError(t, err)
	assert.Equal(t, "Full name is required.", again.Entries[0].Message)
	max, _ := again.Entries[1].Params.Param(rules.ParamMaxLength)
	assert.Equal(t, "10", max)
}

func TestResources_WithEngine(t *testing.T) {
	t.Parallel()

	set, err := load(t).RuleSet("signup")
	require.NoError(t, err)

	f := form.NewSnapshot("signup",
		form.Text("name", "Alexander the Great"),
		form.Text("zip", "1234"),
		form.Text("age", "17"),
	)
	result := rules.New().Validate(f, set)
	assert.Equal(t, []string{
		"Full name can not be greater than 10 characters.",
		"zip must have five digits.",
		"Age is not in the range 18 through 99.",
	}, result.Messages())
	assert.Equal(t, "name", result.Focus.Name)
}

func TestParse_Formats(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		data := `{
			"formsets": [{
				"forms": [{
					"name": "order",
					"fields": [{"property": "qty", "depends": "required,intRange", "vars": {"min": 1, "max": 10}}]
				}]
			}]
		}`
		doc, err := ruleset.Parse([]byte(data), ruleset.FormatJSON)
		require.NoError(t, err)
		res, err := ruleset.New(doc)
		require.NoError(t, err)

		set, err := res.RuleSet("order")
		require.NoError(t, err)
		require.Len(t, set.Entries, 2)
		min, _ := set.Entries[1].Params.Param(rules.ParamMin)
		assert.Equal(t, "1", min)
		assert.Equal(t, "qty is not in the range 1 through 10.", set.Entries[1].Message)
	})

	t.Run("toml", func(t *testing.T) {
		data := `
[constants]
zip = '^\d{5}$'

[[formsets]]
[[formsets.forms]]
name = "address"

[[formsets.forms.fields]]
property = "zip"
depends = ["required", "mask"]
args = ["Zip"]
vars = { mask = "${zip}" }

[[formsets.forms.fields]]
property = "notes"
depends = "maxlength"
vars = { maxlength = 200, lineEndLength = 2 }
`
		doc, err := ruleset.Parse([]byte(data), ruleset.FormatTOML)
		require.NoError(t, err)
		res, err := ruleset.New(doc)
		require.NoError(t, err)

		set, err := res.RuleSet("address")
		require.NoError(t, err)
		require.Len(t, set.Entries, 3)
		assert.Equal(t, "Zip is required.", set.Entries[0].Message)
		mask, _ := set.Entries[1].Params.Param(rules.ParamMask)
		assert.Equal(t, `^\d{5}$`, mask)
		end, _ := set.Entries[2].Params.Param(rules.ParamLineEndLength)
		assert.Equal(t, "2", end)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("x"), ruleset.Format("ini"))
		assert.ErrorIs(t, err, ruleset.ErrUnsupportedFormat)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("{"), ruleset.FormatJSON)
		assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)
	})
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "duplicate form",
			doc:  "formsets: [{forms: [{name: a}, {name: a}]}]",
			err:  ruleset.ErrDuplicateForm,
		},
		{
			name: "missing property",
			doc:  "formsets: [{forms: [{name: a, fields: [{depends: required}]}]}]",
			err:  ruleset.ErrMissingProperty,
		},
		{
			name: "form without name",
			doc:  "formsets: [{forms: [{fields: []}]}]",
			err:  ruleset.ErrInvalidDocument,
		},
		{
			name: "invalid locale",
			doc:  "formsets: [{locale: 'not a locale!', forms: []}]",
			err:  ruleset.ErrInvalidDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ruleset.Parse([]byte(tt.doc), ruleset.FormatYAML)
			require.NoError(t, err)
			_, err = ruleset.New(doc)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := ruleset.New(nil)
	assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte(signupYAML), 0o600))

	res, err := ruleset.Load(path)
	require.NoError(t, err)
	_, err = res.RuleSet("signup")
	assert.NoError(t, err)

	_, err = ruleset.Load(filepath.Join(dir, "rules.ini"))
	assert.ErrorIs(t, err, ruleset.ErrUnsupportedFormat)

	_, err = ruleset.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]ruleset.Format{
		"a.yaml": ruleset.FormatYAML,
		"a.YML":  ruleset.FormatYAML,
		"a.json": ruleset.FormatJSON,
		"a.toml": ruleset.FormatTOML,
	} {
		got, err := ruleset.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}
