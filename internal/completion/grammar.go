package completion

// liveKind names a live entity listing used as a candidate source.
type liveKind int

const (
	liveNone liveKind = iota
	liveContainers
	liveImages
)

// slot identifies one argument position in the command grammar. position is
// the index of the token being completed (0 is the command itself).
type slot struct {
	command    string
	subcommand string
	position   int
}

// suggestion is one grammar entry: either a static vocabulary or a live
// entity fetch.
type suggestion struct {
	live   liveKind
	static []string
}

// topCommands is the full top-level vocabulary. Declaration order is
// candidate order; position-0 completion preserves it exactly.
var topCommands = []string{
	"containers", "images", "networks", "volumes", "monitor", "interactive",
	"list", "start", "stop", "restart", "pause", "unpause", "remove", "logs", "exec", "inspect", "create", "size", "info",
	"attach", "commit", "cp", "diff", "export", "kill", "port", "rename", "top", "update", "wait",
	"pull", "build", "tag", "push", "history", "import", "load", "save",
	"stats", "system", "events", "dashboard", "charts",
	"help", "exit", "quit", "back",
}

// subcommands maps a top-level command to its verb vocabulary. Commands
// absent here (networks, volumes, ...) take no subcommand.
var subcommands = map[string][]string{
	"containers": {
		"list", "start", "stop", "restart", "pause", "unpause", "remove",
		"logs", "exec", "inspect", "create", "size", "info", "attach",
		"commit", "cp", "diff", "export", "kill", "port", "rename",
		"top", "update", "wait",
	},
	"images": {
		"list", "pull", "build", "tag", "push", "remove", "history",
		"import", "load", "save",
	},
	"monitor": {"stats", "system", "events", "dashboard", "charts"},
}

// Static vocabularies for deeper argument positions.
var (
	execCommands   = []string{"ls", "ps", "cat", "echo", "pwd", "whoami", "date", "top", "htop", "vim", "nano"}
	commonRepos    = []string{"myapp", "nginx", "postgres", "redis", "mysql", "ubuntu", "alpine"}
	commonPaths    = []string{"./", "/tmp/", "/var/", "/etc/", "/home/"}
	archiveExts    = []string{".tar", ".tar.gz", ".tar.bz2"}
	killSignals    = []string{"SIGTERM", "SIGKILL", "SIGINT", "SIGQUIT", "SIGHUP"}
	renamePrefixes = []string{"new-", "renamed-", "backup-", "old-"}
	commonTags     = []string{"latest", "v1.0", "v1.1", "stable", "dev", "test", "prod"}
	buildPaths     = []string{".", "./", "../", "~/"}
	archivePaths   = []string{"./", "../", "~/", "/tmp/"}
)

// argSuggestions maps (command, subcommand, position) to the candidate
// source for that slot. Pairs not present here complete to nothing.
var argSuggestions = buildArgSuggestions()

func buildArgSuggestions() map[slot]suggestion {
	table := make(map[slot]suggestion)

	// Position 2 is the entity argument: live container names for every
	// container verb that targets one, live image refs for image verbs.
	for _, verb := range []string{
		"start", "stop", "restart", "pause", "unpause", "remove",
		"logs", "exec", "inspect", "size", "info", "attach", "commit",
		"cp", "diff", "export", "kill", "port", "rename", "top",
		"update", "wait",
	} {
		table[slot{"containers", verb, 2}] = suggestion{live: liveContainers}
	}
	for _, verb := range []string{"pull", "tag", "push", "remove", "history", "save"} {
		table[slot{"images", verb, 2}] = suggestion{live: liveImages}
	}
	table[slot{"images", "build", 2}] = suggestion{static: buildPaths}
	table[slot{"images", "import", 2}] = suggestion{static: archivePaths}
	table[slot{"images", "load", 2}] = suggestion{static: archivePaths}

	// Position 3: verb-specific follow-up arguments.
	table[slot{"containers", "exec", 3}] = suggestion{static: execCommands}
	table[slot{"containers", "commit", 3}] = suggestion{static: commonRepos}
	table[slot{"containers", "cp", 3}] = suggestion{static: commonPaths}
	table[slot{"containers", "export", 3}] = suggestion{static: archiveExts}
	table[slot{"containers", "kill", 3}] = suggestion{static: killSignals}
	table[slot{"containers", "rename", 3}] = suggestion{static: renamePrefixes}
	table[slot{"images", "tag", 3}] = suggestion{static: commonTags}
	table[slot{"images", "import", 3}] = suggestion{static: commonRepos}
	table[slot{"images", "save", 3}] = suggestion{static: archiveExts}

	// Position 4: trailing arguments for the three-argument verbs.
	table[slot{"containers", "commit", 4}] = suggestion{static: commonTags}
	table[slot{"containers", "cp", 4}] = suggestion{static: commonPaths}
	table[slot{"images", "import", 4}] = suggestion{static: commonTags}

	return table
}
