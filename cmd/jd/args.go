package main

import "strings"

// shortFlags are the single-character flags pflag treats as shorthands;
// every other flag name must arrive double-dashed for pflag to recognize
// it as a long flag. Both single- and double-dash forms need to work, so
// normalizeArgs rewrites argv before cobra ever sees it.
var shortFlags = map[string]bool{
	"f": true,
	"o": true,
	"p": true,
	"t": true,
}

// normalizeArgs rewrites single-dash long flags ("-color") into
// double-dash form ("--color") and splits "-f=value" into "-f" "value",
// leaving recognized shorthands and already-double-dashed flags alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") || !strings.HasPrefix(arg, "-") {
			out = append(out, arg)
			continue
		}

		body := arg[1:]
		if eq := strings.IndexByte(body, '='); eq >= 0 {
			name, value := body[:eq], body[eq+1:]
			if shortFlags[name] {
				out = append(out, "-"+name, value)
			} else {
				out = append(out, "--"+name, value)
			}
			continue
		}

		if shortFlags[body] {
			out = append(out, arg)
			continue
		}
		out = append(out, "--"+body)
	}
	return out
}
