package ruleset

import (
	"strconv"
	"strings"
)

// maxArgs is the number of positional message arguments, {0} through {3}.
const maxArgs = 4

// constants resolves ${name} references. Formset constants shadow global ones.
type constants struct {
	global map[string]string
	local  map[string]string
}

func (c constants) lookup(name string) (string, bool) {
	if v, ok := c.local[name]; ok {
		return v, true
	}
	v, ok := c.global[name]
	return v, ok
}

// expand replaces every ${name} whose name is a known constant. References to
// unknown names, including ${var:...}, are left untouched.
func (c constants) expand(s string) string {
	return replaceRefs(s, func(ref string) (string, bool) {
		if strings.HasPrefix(ref, "var:") {
			return "", false
		}
		return c.lookup(ref)
	})
}

// expandVars replaces every ${var:name} with the field's var.
func expandVars(s string, vars map[string]string) string {
	return replaceRefs(s, func(ref string) (string, bool) {
		name, ok := strings.CutPrefix(ref, "var:")
		if !ok {
			return "", false
		}
		v, ok := vars[name]
		return v, ok
	})
}

func replaceRefs(s string, resolve func(ref string) (string, bool)) string {
	if !strings.Contains(s, "${") {
		return s
	}

	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start:], '}')
		if end < 0 {
			break
		}
		end += start

		b.WriteString(s[:start])
		if v, ok := resolve(s[start+2 : end]); ok {
			b.WriteString(v)
		} else {
			b.WriteString(s[start : end+1])
		}
		s = s[end+1:]
	}
	b.WriteString(s)
	return b.String()
}

// formatArgs replaces {0}..{3} with args. Missing args leave the placeholder.
func formatArgs(s string, args []string) string {
	for i := 0; i < maxArgs && i < len(args); i++ {
		s = strings.ReplaceAll(s, "{"+strconv.Itoa(i)+"}", args[i])
	}
	return s
}
