package notify

import "strings"

// NormalizePhone strips formatting noise and ensures an international
// prefix. Returns "" for anything that cannot be a phone number.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// formatting noise
		default:
			return ""
		}
	}
	n := b.String()
	digits := strings.TrimPrefix(n, "+")
	if len(digits) < 6 || len(digits) > 15 {
		return ""
	}
	if !strings.HasPrefix(n, "+") {
		n = "+" + n
	}
	return n
}

// CollectCandidates normalizes and deduplicates phone candidates,
// preserving first-seen order. Order matters: the dispatcher attempts
// delivery candidate by candidate and stops on the first success.
func CollectCandidates(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		n := NormalizePhone(r)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
