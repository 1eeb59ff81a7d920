package paths

import (
	"flag"
)

// SetupFilePathFlag creates a new string flag with the passed name with a sane
// default for the path to the file, if found using the Find function. If not,
// the flag defaults to an empty string.
func SetupFilePathFlag(fileName, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, Find(fileName), "Path to "+fileName)
}

// SetupDirFlag creates a new string flag defaulting to the directory holding
// fileName, or to fallback if it cannot be found.
func SetupDirFlag(fileName, flagName, fallback string, flagPtr *string, usage string) {
	dir := FindDir(fileName)
	if dir == "" {
		dir = fallback
	}
	flag.StringVar(flagPtr, flagName, dir, usage)
}
