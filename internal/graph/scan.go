package graph

// ExtractJSONObject returns the first balanced top-level JSON object
// in s, for salvaging a graph out of a response that wraps it in
// prose or a code fence. A byte-level state machine tracks strings and
// escapes; ASCII delimiters never occur inside UTF-8 continuation
// bytes, so byte scanning is safe.
func ExtractJSONObject(s string) (string, bool) {
	var depth int
	start := -1
	var inString, escape bool

	for i := 0; i < len(s); i++ {
		b := s[i]

		if escape {
			escape = false
			continue
		}
		if inString {
			if b == '\\' {
				escape = true
			} else if b == '"' {
				inString = false
			}
			continue
		}

		switch b {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
