package command

import (
	"flag"
	"strings"
)

type Args []string

func NewArgs(args []string) Args {
	if len(args) == 0 {
		return nil
	}
	return args[1:]
}

// Filter returns all command line arguments which will match the given flag.FlagSet.
func (a Args) Filter(set *flag.FlagSet) Args {
	if set == nil {
		return a
	}
	known, _ := a.split(set)
	return known
}

// Without returns all command line arguments which do not match the given flag.FlagSet.
func (a Args) Without(set *flag.FlagSet) Args {
	if set == nil {
		return a
	}
	_, rest := a.split(set)
	return rest
}

// Positional returns the arguments which are not flags of set. Arguments
// starting with a dash but unknown to set are kept as text, everything
// after a "--" terminator is positional.
func (a Args) Positional(set *flag.FlagSet) Args {
	_, rest := a.split(set)
	var args Args
	for i, arg := range rest {
		if arg == "--" {
			args = append(args, rest[i+1:]...)
			break
		}
		args = append(args, arg)
	}
	return args
}

func (a Args) split(set *flag.FlagSet) (known, rest Args) {
	for i := 0; i < len(a); i++ {
		arg := a[i]
		if arg == "--" {
			rest = append(rest, a[i:]...)
			break
		}

		if !isFlag(arg) || set == nil {
			rest = append(rest, arg)
			continue
		}

		name := strings.TrimLeft(arg, "-")
		hasValue := false
		if idx := strings.Index(name, "="); idx > -1 {
			name = name[:idx]
			hasValue = true
		}

		f := set.Lookup(name)
		if f == nil {
			rest = append(rest, arg)
			continue
		}

		known = append(known, arg)
		if hasValue {
			continue
		}
		if iFn, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && iFn.IsBoolFlag() {
			continue
		}
		if i+1 < len(a) {
			known = append(known, a[i+1])
			i++
		}
	}
	return known, rest
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}
