package motion

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// The token filter makes string-encoded properties interpolable. Around each
// interpolation step it expands every string property into one numeric
// synthetic property per embedded number ("x" holding "10px 5px" becomes
// "x_0" = 10 and "x_1" = 5), lets the interpolator work on those, and then
// reassembles the formatted string. Hex color literals are rewritten to
// rgb(r,g,b) form at configuration time so their channels tween as ordinary
// numbers.

const tokenDataKey = "token"

var (
	tokenNumber = regexp.MustCompile(`[0-9.\-]+`)
	tokenHex    = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)
)

// tokenManifest records how one string property decomposes: the literal
// chunks surrounding each number (len(parts) == len(chunkNames)+1) and the
// synthetic property names the numbers expand into.
type tokenManifest struct {
	parts      []string
	chunkNames []string
	rgb        bool // rgb(...) values get their components rounded on reassembly
}

type tokenFilter struct{}

func init() { RegisterFilter("token", tokenFilter{}) }

// Match reports true when any current property value is a string.
func (tokenFilter) Match(t *Tween) bool { return t.current.hasString() }

// TweenCreated normalizes hex color literals in all three state maps to
// rgb(r,g,b) strings.
func (tokenFilter) TweenCreated(t *Tween) {
	for _, state := range []State{t.current, t.original, t.target} {
		for k, v := range state {
			if s, ok := v.(string); ok {
				state[k] = normalizeHexColors(s)
			}
		}
	}
}

// BeforeTween builds the token manifests from the current state and expands
// string properties (and their easing entries) into numeric synthetic
// properties across all three state maps.
func (tokenFilter) BeforeTween(t *Tween) {
	manifests := make(map[string]*tokenManifest)
	for k, v := range t.current {
		if s, ok := v.(string); ok {
			manifests[k] = parseTokenManifest(k, s)
		}
	}
	t.SetFilterData(tokenDataKey, manifests)

	for k, m := range manifests {
		for _, chunk := range m.chunkNames {
			t.CopyEasing(k, chunk)
		}
		t.RemoveEasing(k)
	}
	for _, state := range []State{t.current, t.original, t.target} {
		expandTokens(state, manifests)
	}
}

// AfterTween reassembles the formatted strings from the synthetic numeric
// properties and restores the per-property easing entries.
func (tokenFilter) AfterTween(t *Tween) {
	manifests, _ := t.FilterData(tokenDataKey).(map[string]*tokenManifest)
	if manifests == nil {
		return
	}
	for _, state := range []State{t.current, t.original, t.target} {
		collapseTokens(state, manifests)
	}
	if t.easing.per != nil {
		for k, m := range manifests {
			if len(m.chunkNames) > 0 {
				t.easing.per[k] = t.easing.per[m.chunkNames[0]]
			}
			for _, chunk := range m.chunkNames {
				delete(t.easing.per, chunk)
			}
		}
	}
}

// AfterTweenEnd releases the manifest scratch for the finished segment.
func (tokenFilter) AfterTweenEnd(t *Tween) {
	t.SetFilterData(tokenDataKey, nil)
}

func parseTokenManifest(prop, s string) *tokenManifest {
	nums := tokenNumber.FindAllString(s, -1)
	names := make([]string, len(nums))
	for i := range nums {
		names[i] = prop + "_" + strconv.Itoa(i)
	}
	return &tokenManifest{
		parts:      tokenNumber.Split(s, -1),
		chunkNames: names,
		rgb:        strings.HasPrefix(s, "rgb("),
	}
}

func expandTokens(state State, manifests map[string]*tokenManifest) {
	for k, m := range manifests {
		s, ok := state[k].(string)
		if !ok {
			continue
		}
		nums := tokenNumber.FindAllString(s, -1)
		delete(state, k)
		for i, chunk := range m.chunkNames {
			var f float64
			if i < len(nums) {
				f, _ = strconv.ParseFloat(nums[i], 64)
			}
			state[chunk] = f
		}
	}
}

func collapseTokens(state State, manifests map[string]*tokenManifest) {
	for k, m := range manifests {
		if len(m.chunkNames) == 0 {
			continue
		}
		// A state that was never expanded for this property (for example a
		// numeric target paired with a string current value) is left alone.
		if _, ok := state[m.chunkNames[0]]; !ok {
			continue
		}
		var b strings.Builder
		b.WriteString(m.parts[0])
		for i, chunk := range m.chunkNames {
			v, _ := toFloat(state[chunk])
			delete(state, chunk)
			if m.rgb {
				v = math.Round(v)
			}
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			b.WriteString(m.parts[i+1])
		}
		state[k] = b.String()
	}
}

// normalizeHexColors rewrites #rgb and #rrggbb tokens to rgb(r,g,b).
func normalizeHexColors(s string) string {
	return tokenHex.ReplaceAllStringFunc(s, func(hex string) string {
		c, err := colorful.Hex(hex)
		if err != nil {
			return hex
		}
		var b strings.Builder
		b.WriteString("rgb(")
		b.WriteString(strconv.Itoa(int(c.R*255 + 0.5)))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(int(c.G*255 + 0.5)))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(int(c.B*255 + 0.5)))
		b.WriteString(")")
		return b.String()
	})
}
