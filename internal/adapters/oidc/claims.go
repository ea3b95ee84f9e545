package oidc

import (
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// idFields is the intermediate shape claims are mapped into before
// building a domain Identity.
type idFields struct {
	principal  string
	email      string
	givenName  string
	familyName string
	groups     []string
}

// claimMapper resolves identity fields from a raw claim set. Standard
// OIDC claim names apply by default; providers with non-standard claims
// are handled by the optional JMESPath selectors, validated once at
// construction.
type claimMapper struct {
	principalPath string
	groupsPath    string
}

func newClaimMapper(principalPath, groupsPath string) (*claimMapper, error) {
	m := &claimMapper{
		principalPath: strings.TrimSpace(principalPath),
		groupsPath:    strings.TrimSpace(groupsPath),
	}
	if m.principalPath != "" {
		if _, err := jmespath.Compile(m.principalPath); err != nil {
			return nil, fmt.Errorf("compile principal claim path: %w", err)
		}
	}
	if m.groupsPath != "" {
		if _, err := jmespath.Compile(m.groupsPath); err != nil {
			return nil, fmt.Errorf("compile groups claim path: %w", err)
		}
	}
	return m, nil
}

// fromClaims maps a raw claim set into idFields.
func (m *claimMapper) fromClaims(claims map[string]any) idFields {
	var f idFields
	m.fill(&f, claims)
	return f
}

// fill populates only the fields still empty, so id_token claims take
// precedence over the userinfo endpoint.
func (m *claimMapper) fill(f *idFields, claims map[string]any) {
	if f.principal == "" {
		f.principal = m.principalFrom(claims)
	}
	if f.email == "" {
		f.email = stringClaim(claims, "email", "mail")
	}
	if f.givenName == "" {
		f.givenName = stringClaim(claims, "given_name", "firstname")
	}
	if f.familyName == "" {
		f.familyName = stringClaim(claims, "family_name", "lastname")
	}
	if len(f.groups) == 0 {
		f.groups = m.groupsFrom(claims)
	}
}

func (m *claimMapper) principalFrom(claims map[string]any) string {
	if m.principalPath != "" {
		if v, err := jmespath.Search(m.principalPath, claims); err == nil {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return stringClaim(claims, "sub", "principal")
}

func (m *claimMapper) groupsFrom(claims map[string]any) []string {
	var raw any
	if m.groupsPath != "" {
		if v, err := jmespath.Search(m.groupsPath, claims); err == nil && v != nil {
			raw = v
		}
	}
	if raw == nil {
		if v, ok := claims["groups"]; ok {
			raw = v
		} else if v, ok := claims["memberof"]; ok {
			raw = v
		}
	}
	return toStringSlice(raw)
}

// stringClaim returns the first non-empty string claim among names.
func stringClaim(claims map[string]any, names ...string) string {
	for _, n := range names {
		if s, ok := claims[n].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// toStringSlice tolerates the two group encodings seen in the wild:
// a JSON array of strings and a single string.
func toStringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if vv == "" {
			return nil
		}
		return []string{vv}
	default:
		return nil
	}
}
