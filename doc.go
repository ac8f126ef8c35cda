// Package parg provides declarative command-line argument parsing with a
// typed value registry: callers register named flags with an expected value
// kind, required/optional policy, and optional default, then run a single
// parse pass over the argument tokens and read values back by name with
// static typing enforced against the declared kind.
//
// Features:
//   - Closed set of primitive value kinds (integers, floats, bool, rune, string)
//   - Presence-only flags with no value
//   - Defaults accepted automatically for flags that were not provided
//   - Generic typed retrieval that rejects a mismatched requested type
//   - Builder pattern and TOML manifest for registry construction
//   - Usage text generation with a built-in --help handler
//
// Quick Start:
//
//	threshold := parg.WithValue("threshold", parg.KindUint8, true)
//	verbose := parg.WithoutValue("verbose", false)
//
//	cli := parg.New(threshold, verbose)
//	cli.SetInfo("my_command", "An example command")
//
//	if err := cli.Parse(); err != nil {
//	    if errors.Is(err, parg.ErrHelp) {
//	        return // usage was printed, clean exit
//	    }
//	    log.Fatal(err)
//	}
//
//	limit, err := parg.Get[uint8](cli, "threshold")
//	if cli.Exists("verbose") {
//	    // ...
//	}
//
// Flag syntax is "--name value" for value-taking flags and "--name" for
// presence flags. There is no "=" joined form, no short flags, and no
// positional arguments. Unknown "--name" tokens are silently ignored.
//
// Thread Safety:
// A CLI may be re-parsed any number of times; each Parse call fully resets
// the per-run state. Parse is not safe for concurrent use on the same CLI.
// Exists and Get are read-only and may run concurrently with each other,
// but not with an in-flight Parse.
package parg
