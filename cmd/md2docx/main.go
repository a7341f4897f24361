package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	md2docx "github.com/MohtashamMurshid/md-to-docx"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, positional, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Printf("md2docx %s\n", Version)
		return
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	poolSize := md2docx.ResolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}

	env := DefaultEnv()
	if err := runConvert(context.Background(), positional, flags, poolSize, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
