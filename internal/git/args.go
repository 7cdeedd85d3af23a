package git

// Splits subcommand args into the target repository and pathspecs.
//
// The first positional argument names the repository, either a local
// directory or a URL to clone, and defaults to the current directory. Any
// remaining arguments, optionally introduced by "--", restrict the log
// export to those paths.
func ParseArgs(args []string) (repo string, pathspecs []string) {
	repo = "."

	i := 0
	if i < len(args) && args[i] != "--" {
		repo = args[i]
		i += 1
	}

	if i < len(args) && args[i] == "--" {
		i += 1
	}

	for ; i < len(args); i += 1 {
		if args[i] == "--" {
			break // Ignore args after a second separator
		}

		pathspecs = append(pathspecs, args[i])
	}

	return repo, pathspecs
}
