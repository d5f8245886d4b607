package rules

// Parameter keys read by the built-in rule kinds.
const (
	ParamMin               = "min"
	ParamMax               = "max"
	ParamMask              = "mask"
	ParamMaxLength         = "maxlength"
	ParamMinLength         = "minlength"
	ParamDatePattern       = "datePattern"
	ParamDatePatternStrict = "datePatternStrict"
	ParamLineEndLength     = "lineEndLength"
)

// ParamLookup resolves rule parameters by key. It is queried lazily during
// evaluation, so implementations may compute values on demand. A missing key
// reports ok == false.
type ParamLookup interface {
	Param(key string) (value string, ok bool)
}

// Params is a static ParamLookup.
type Params map[string]string

func (p Params) Param(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// ParamFunc adapts a function to ParamLookup.
type ParamFunc func(key string) (string, bool)

func (f ParamFunc) Param(key string) (string, bool) {
	return f(key)
}

type noParams struct{}

func (noParams) Param(string) (string, bool) { return "", false }
