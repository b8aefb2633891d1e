// Package flagx contains helpers that let several config stages parse their
// own subset of command-line flags without tripping over flags owned by
// other stages.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only those arguments that belong to the given flags,
// keeping their values. Both "-f value" and "--flag=value" forms are
// recognized. Everything else is dropped, so a flag.FlagSet parsing the
// result never sees flags it does not define.
func FilterArgs(args []string, allowed []string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		keep[name] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if name, _, ok := strings.Cut(arg, "="); ok {
			if _, want := keep[name]; want {
				filtered = append(filtered, arg)
			}
			continue
		}
		if _, want := keep[arg]; want {
			filtered = append(filtered, arg)
			// The next argument is this flag's value unless it looks like
			// another flag.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// JSONConfigFile extracts the config file path passed via -c or -config.
// Other arguments are ignored. Returns "" when neither flag is present.
func JSONConfigFile() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
