package grammar

// Normalize repairs the token-stream artifact introduced by shell
// tab-completion machinery, which splits "key=value" into the three
// tokens "key", "=", "value". Any token exactly equal to "=" is
// eliminated by fusing its neighbors into a single token; a missing
// neighbor contributes the empty string. Single left-to-right pass with
// one token of lookback; no other token is altered.
func Normalize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	fuse := false
	for _, token := range tokens {
		switch {
		case token == "=":
			prev := ""
			if len(out) > 0 {
				prev = out[len(out)-1]
				out = out[:len(out)-1]
			}
			out = append(out, prev+"=")
			fuse = true
		case fuse:
			out[len(out)-1] += token
			fuse = false
		default:
			out = append(out, token)
		}
	}
	return out
}
