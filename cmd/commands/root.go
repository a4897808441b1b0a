package commands

// dataDir is the --data-dir override shared by every headless command.
// Empty means the per-user default.
var dataDir string

// SetDataDir wires the root command's --data-dir flag into this package.
func SetDataDir(dir string) {
	dataDir = dir
}
