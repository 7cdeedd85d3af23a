package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sinclairtarget/git-impact/internal/config"
	"github.com/sinclairtarget/git-impact/internal/flagutils"
	"github.com/sinclairtarget/git-impact/internal/git"
	"github.com/sinclairtarget/git-impact/internal/impact"
	"github.com/sinclairtarget/git-impact/internal/pretty"
)

var Commit = "unknown"
var Version = "unknown"

type command struct {
	flagSet     *flag.FlagSet
	run         func(args []string) error
	description string
}

// Main examines the args and delegates to the specified subcommand.
//
// If no subcommand was specified, we default to the "rank" subcommand.
func main() {
	subcommands := map[string]command{ // Available subcommands
		"rank":  rankCmd(),
		"hist":  histCmd(),
		"dump":  dumpCmd(),
		"parse": parseCmd(),
	}

	// --- Handle top-level flags ---
	mainFlagSet := flag.NewFlagSet("git-impact", flag.ExitOnError)

	versionFlag := mainFlagSet.Bool("version", false, "Print version and exit")
	verboseFlag := mainFlagSet.Bool("v", false, "Enables debug logging")

	mainFlagSet.Usage = func() {
		fmt.Println(
			"Usage: git-impact [-v] [subcommand] [subcommand options...]",
		)
		fmt.Println("git-impact ranks repository contributors by impact score")

		fmt.Println()
		fmt.Println("Top-level options:")
		mainFlagSet.PrintDefaults()

		fmt.Println()
		fmt.Println("Subcommands:")

		helpSubcommands := []string{"rank", "hist"}
		for _, name := range helpSubcommands {
			cmd := subcommands[name]

			fmt.Printf("  %s\n", name)
			fmt.Printf("\t%s\n", cmd.description)
		}
	}

	// Look for the index of the first arg not intended as a top-level flag.
	// We handle this manually so that specifying the default subcommand is
	// optional even when providing subcommand flags.
	subcmdIndex := 1
loop:
	for subcmdIndex < len(os.Args) {
		switch os.Args[subcmdIndex] {
		case "-version", "--version", "-v", "--v", "-h", "--help":
			subcmdIndex += 1
		default:
			break loop
		}
	}

	mainFlagSet.Parse(os.Args[1:subcmdIndex])

	if *versionFlag {
		fmt.Printf("%s %s\n", Version, Commit)
		return
	}

	if *verboseFlag {
		configureLogging(slog.LevelDebug)
		logger().Debug("log level set to DEBUG")
	} else {
		configureLogging(slog.LevelInfo)
	}

	pretty.SetColorEnabled(pretty.AllowDynamic(os.Stdout))

	args := os.Args[subcmdIndex:]

	// --- Handle subcommands ---
	cmd := subcommands["rank"] // Default to "rank"
	if len(args) > 0 {
		first := args[0]
		if subcommand, ok := subcommands[first]; ok {
			cmd = subcommand
			args = args[1:]
		}
	}

	cmd.flagSet.Parse(args)
	subargs := cmd.flagSet.Args()

	if err := cmd.run(subargs); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// -v- Subcommand definitions --------------------------------------------------

func rankCmd() command {
	flagSet := flag.NewFlagSet("git-impact rank", flag.ExitOnError)

	useCsv := flagSet.Bool("csv", false, "Output as csv")
	useJson := flagSet.Bool("json", false, "Output as json")
	limit := flagSet.Int("n", 10, "Number of authors to show")
	configPath := flagSet.String("config", "", strings.TrimSpace(`
Path to a policy file. Defaults to .git-impact.yaml when present
	`))
	window := flagSet.Duration("window", 0, strings.TrimSpace(`
Merge window for deduplicating commit bursts, e.g. 45m. Overrides the policy file
	`))

	filterFlags := addFilterFlags(flagSet)

	description := "Rank authors by their impact on the repository"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: git-impact rank [options...] [repository] [[--] paths...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			if !isOnlyOne(*useCsv, *useJson) {
				return errors.New("-csv and -json are mutually exclusive")
			}

			// Reject before any clone or log work happens
			if *limit <= 0 {
				return errors.New("-n flag must be a positive integer")
			}

			policy, err := loadPolicy(*configPath, *window)
			if err != nil {
				return err
			}

			repo, paths := git.ParseArgs(args)
			return rank(
				repo,
				paths,
				policy,
				*limit,
				*useCsv,
				*useJson,
				filterFlags.toFilters(),
			)
		},
	}
}

func histCmd() command {
	flagSet := flag.NewFlagSet("git-impact hist", flag.ExitOnError)

	configPath := flagSet.String("config", "", strings.TrimSpace(`
Path to a policy file. Defaults to .git-impact.yaml when present
	`))
	window := flagSet.Duration("window", 0, strings.TrimSpace(`
Merge window for deduplicating commit bursts, e.g. 45m. Overrides the policy file
	`))

	filterFlags := addFilterFlags(flagSet)

	description := "Print out a timeline of contribution events by date"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: git-impact hist [options...] [repository] [[--] paths...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			policy, err := loadPolicy(*configPath, *window)
			if err != nil {
				return err
			}

			repo, paths := git.ParseArgs(args)
			return hist(
				repo,
				paths,
				policy.MergeWindow,
				filterFlags.toFilters(),
			)
		},
	}
}

func dumpCmd() command {
	flagSet := flag.NewFlagSet("git-impact dump", flag.ExitOnError)

	filterFlags := addFilterFlags(flagSet)

	return command{
		flagSet:     flagSet,
		description: "Print out the raw log export",
		run: func(args []string) error {
			repo, paths := git.ParseArgs(args)
			return dump(repo, paths, filterFlags.toFilters())
		},
	}
}

func parseCmd() command {
	flagSet := flag.NewFlagSet("git-impact parse", flag.ExitOnError)

	filterFlags := addFilterFlags(flagSet)

	return command{
		flagSet:     flagSet,
		description: "Print out the per-author stats parsed from the log",
		run: func(args []string) error {
			repo, paths := git.ParseArgs(args)
			return parse(repo, paths, filterFlags.toFilters())
		},
	}
}

// -^---------------------------------------------------------------------------

func configureLogging(level slog.Level) {
	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// Policy assembly happens before any repository work so that a bad flag or
// file fails fast.
func loadPolicy(path string, window time.Duration) (impact.Policy, error) {
	policy, err := config.Discover(path)
	if err != nil {
		return policy, err
	}

	if window != 0 {
		policy.MergeWindow = window
		if err := policy.Validate(); err != nil {
			return policy, err
		}
	}

	return policy, nil
}

// Used to check mutual exclusion.
func isOnlyOne(flags ...bool) bool {
	var foundOne bool
	for _, f := range flags {
		if f {
			if foundOne {
				return false
			}

			foundOne = true
		}
	}

	return true
}

type filterFlags struct {
	since    *string
	until    *string
	authors  flagutils.SliceFlag
	nauthors flagutils.SliceFlag
}

func (f *filterFlags) toFilters() git.LogFilters {
	return git.LogFilters{
		Since:    *f.since,
		Until:    *f.until,
		Authors:  f.authors,
		Nauthors: f.nauthors,
	}
}

func addFilterFlags(set *flag.FlagSet) *filterFlags {
	flags := filterFlags{
		since: set.String("since", "", strings.TrimSpace(`
Only count commits after the given date. See git-commit(1) for valid date formats
		`)),
		until: set.String("until", "", strings.TrimSpace(`
Only count commits before the given date
		`)),
	}

	set.Var(&flags.authors, "author", strings.TrimSpace(`
Only count commits by these authors. Can be specified multiple times
	`))

	set.Var(&flags.nauthors, "nauthor", strings.TrimSpace(`
Exclude commits by these authors. Can be specified multiple times
	`))

	return &flags
}
