package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// M is a convenience alias for named interpolation arguments.
type M = map[string]any

// Args selects the interpolation mode at the call boundary instead of
// inspecting argument shapes at runtime.
type Args interface {
	isArgs()
}

// Positional substitutes {{0}}, {{1}}, ... with the value at that index.
type Positional []any

func (Positional) isArgs() {}

// Named substitutes placeholders by name and enables plural handling.
type Named map[string]any

func (Named) isArgs() {}

var (
	pluralOpenRe = regexp.MustCompile(`^\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*,\s*plural\s*,`)
	autoPluralRe = regexp.MustCompile(`\{\{([\p{L}\p{N}_'-]+):([A-Za-z_][A-Za-z0-9_]*)\}\}`)
	namedVarRe   = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_.]*)\}\}`)
	positionalRe = regexp.MustCompile(`\{\{(\d+)\}\}`)
)

// interpolator renders templates for one locale, delegating plural category
// lookups to the shared resolver.
type interpolator struct {
	locale   string
	resolver *categoryResolver
}

// render expands template with args. Without args the template is returned
// unchanged. Positional args run a single indexed pass; named args run three
// ordered passes, each consuming the previous pass's output:
//
//  1. explicit plural blocks {{var, plural, forms}}
//  2. auto-pluralized word references {{word:countVar}}
//  3. plain named substitutions {{name}}
func (ip interpolator) render(template string, args Args) (string, error) {
	switch a := args.(type) {
	case nil:
		return template, nil
	case Positional:
		return renderPositional(template, a), nil
	case Named:
		return ip.renderNamed(template, a)
	default:
		return "", fmt.Errorf("i18n: unsupported argument type %T", args)
	}
}

func renderPositional(template string, values Positional) string {
	return positionalRe.ReplaceAllStringFunc(template, func(m string) string {
		idx := 0
		for _, c := range m[2 : len(m)-2] {
			idx = idx*10 + int(c-'0')
		}
		if idx >= len(values) {
			return ""
		}
		return stringify(values[idx])
	})
}

func (ip interpolator) renderNamed(template string, args Named) (string, error) {
	out, err := ip.expandPluralBlocks(template, args)
	if err != nil {
		return "", err
	}

	out, err = ip.expandAutoPlurals(out, args)
	if err != nil {
		return "", err
	}

	out = namedVarRe.ReplaceAllStringFunc(out, func(m string) string {
		// Absent values keep the placeholder text, distinguishing
		// "no value" from an explicit empty string.
		if v, ok := args[m[2:len(m)-2]]; ok {
			return stringify(v)
		}
		return m
	})

	return out, nil
}

// pluralBlock is one located {{var, plural, forms}} occurrence.
// Offsets are into the string the block was found in.
type pluralBlock struct {
	start, end int
	variable   string
	forms      string
}

// findPluralBlocks scans left to right; each found block is skipped over
// entirely so nested plural directives inside its forms are not reported as
// separate top-level blocks.
func findPluralBlocks(s string) ([]pluralBlock, error) {
	var blocks []pluralBlock

	i := 0
	for {
		rel := strings.Index(s[i:], "{{")
		if rel < 0 {
			break
		}
		open := i + rel

		head := pluralOpenRe.FindStringSubmatchIndex(s[open:])
		if head == nil {
			i = open + 2
			continue
		}

		last := matchingBrace(s, open)
		if last < 0 || s[last-1] != '}' {
			return nil, fmt.Errorf("%w: plural block at offset %d never closes", ErrUnbalancedBraces, open)
		}

		blocks = append(blocks, pluralBlock{
			start:    open,
			end:      last + 1,
			variable: s[open+head[2] : open+head[3]],
			forms:    s[open+head[1] : last-1],
		})
		i = last + 1
	}

	return blocks, nil
}

// expandPluralBlocks substitutes located blocks back to front so earlier
// offsets stay valid. A block whose variable is not a number in args is left
// unexpanded.
func (ip interpolator) expandPluralBlocks(template string, args Named) (string, error) {
	blocks, err := findPluralBlocks(template)
	if err != nil {
		return "", err
	}

	out := template
	for k := len(blocks) - 1; k >= 0; k-- {
		b := blocks[k]

		count, ok := toCount(args[b.variable])
		if !ok {
			continue
		}

		forms, err := parsePluralForms(b.forms)
		if err != nil {
			return "", err
		}

		content, err := forms.selectForm(count, func(n int) (string, error) {
			return ip.resolver.categoryFor(ip.locale, n)
		})
		if err != nil {
			return "", err
		}

		out = out[:b.start] + content + out[b.end:]
	}

	return out, nil
}

// expandAutoPlurals handles {{word:countVar}}: the bare word when the count's
// category is "one", its morphological plural otherwise. A missing or
// non-numeric countVar drops the directive and keeps the bare word.
func (ip interpolator) expandAutoPlurals(template string, args Named) (string, error) {
	var firstErr error

	out := autoPluralRe.ReplaceAllStringFunc(template, func(m string) string {
		sub := autoPluralRe.FindStringSubmatch(m)
		word, countVar := sub[1], sub[2]

		count, ok := toCount(args[countVar])
		if !ok {
			return word
		}

		category, err := ip.resolver.categoryFor(ip.locale, count)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return m
		}

		if category == PluralOne {
			return word
		}
		return Pluralize(word, ip.locale)
	})

	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// toCount reports whether v is usable as a plural count. Integer types and
// integral floats qualify; a float with a fractional part does not, so exact
// "=N" forms never match through truncation.
func toCount(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		if float32(int(n)) == n {
			return int(n), true
		}
	case float64:
		if float64(int(n)) == n {
			return int(n), true
		}
	}
	return 0, false
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
