// Package item parses catalog item identifiers of the form T<tier>_<base>[@<level>]
package item

import (
	"regexp"
	"strconv"
	"strings"
)

// identifierPattern matches T<tier>_<base> with an optional @<level> suffix.
// The base is non-greedy so a trailing @<digits> is never folded into it.
var identifierPattern = regexp.MustCompile(`^T(\d+)_(.+?)(?:@(\d+))?$`)

// Identifier is a parsed item reference
type Identifier struct {
	Raw  string
	Tier int
	Base string
	// Level is the @<level> suffix, 0 when absent
	Level int
	// HasLevel reports whether the raw identifier carried an @<level> suffix
	HasLevel bool
}

// Parse splits a raw identifier into its tier, base and level.
// Returns false for anything that is not a valid item reference.
func Parse(raw string) (Identifier, bool) {
	m := identifierPattern.FindStringSubmatch(raw)
	if m == nil {
		return Identifier{}, false
	}

	tier, err := strconv.Atoi(m[1])
	if err != nil || tier <= 0 {
		return Identifier{}, false
	}

	id := Identifier{
		Raw:  raw,
		Tier: tier,
		Base: m[2],
	}

	if m[3] != "" {
		level, err := strconv.Atoi(m[3])
		if err != nil {
			return Identifier{}, false
		}
		id.Level = level
		id.HasLevel = true
	}

	return id, true
}

// BaseOf returns the base identifier of raw, or "" when raw is not a valid reference
func BaseOf(raw string) string {
	id, ok := Parse(raw)
	if !ok {
		return ""
	}
	return id.Base
}

// Unenchanted returns the raw identifier without its @<level> suffix.
// The tier keeps its original spelling, so T04_X@1 yields T04_X.
func (id Identifier) Unenchanted() string {
	if !id.HasLevel {
		return id.Raw
	}
	if i := strings.LastIndexByte(id.Raw, '@'); i >= 0 {
		return id.Raw[:i]
	}
	return id.Raw
}

// RenderID composes the identifier handed to the image renderer.
// A level of "" or "0" yields the bare unenchanted identifier.
func (id Identifier) RenderID(level string) string {
	if level == "" || level == "0" {
		return id.Unenchanted()
	}
	return id.Unenchanted() + "@" + level
}
