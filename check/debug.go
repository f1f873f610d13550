package check

import (
	"flag"
	"fmt"
	"io"
	"os"
)

var (
	DebugAll     = flag.Bool("debug", false, "debug all")
	DebugEntries = flag.Bool("debug-entries", false, "debug entry resolution")
	DebugAssign  = flag.Bool("debug-assign", false, "debug assignability")

	DebugWriter io.Writer = os.Stdout
)

func EntriesPrintf(format string, args ...interface{}) {
	if *DebugAll || *DebugEntries {
		_, err := fmt.Fprintf(DebugWriter, format, args...)
		if err != nil {
			panic(err)
		}
	}
}

func AssignPrintf(format string, args ...interface{}) {
	if *DebugAll || *DebugAssign {
		_, err := fmt.Fprintf(DebugWriter, format, args...)
		if err != nil {
			panic(err)
		}
	}
}
