package rules

import (
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strings"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

type patternRule struct {
	kind    Kind
	pattern *regexp.Regexp
	expect  string
}

func (r patternRule) Kind() Kind { return r.kind }

func (r patternRule) Check(value any, _ Seen) Outcome {
	if s, ok := asText(value); ok && r.pattern.MatchString(s) {
		return Pass()
	}
	return Fail("validation."+r.kind.String(),
		fmt.Sprintf("must contain only %s, got %s", r.expect, materialize(value)),
		map[string]any{"value": materialize(value)},
	)
}

type emailRule struct{}

func (emailRule) Kind() Kind { return KindEmail }

func (emailRule) Check(value any, _ Seen) Outcome {
	if s, ok := asText(value); ok && isEmail(s) {
		return Pass()
	}
	return Fail("validation.email",
		fmt.Sprintf("must be a valid email address, got %s", materialize(value)),
		map[string]any{"value": materialize(value)},
	)
}

// isEmail accepts RFC 5322 addresses whose domain has at least two labels.
func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

type inRule struct {
	allowed []string
}

func (inRule) Kind() Kind { return KindIn }

func (r inRule) Check(value any, _ Seen) Outcome {
	s, ok := asText(value)
	if !ok && value != nil {
		s, ok = fmt.Sprint(value), true
	}
	if ok && slices.Contains(r.allowed, s) {
		return Pass()
	}
	return Fail("validation.in_list",
		fmt.Sprintf("must be one of: %s, got %s", strings.Join(r.allowed, ", "), materialize(value)),
		map[string]any{"allowed_values": r.allowed},
	)
}

// In accepts values whose string form is one of the comma-separated options.
func In(p Param) (Rule, error) {
	if !p.Present {
		return nil, fmt.Errorf("%w: in expects a comma-separated list", ErrMissingParam)
	}
	allowed := strings.Split(p.Raw, ",")
	if slices.Contains(allowed, "") {
		return nil, fmt.Errorf("%w: in has an empty option in %q", ErrInvalidParam, p.Raw)
	}
	return inRule{allowed: allowed}, nil
}
