package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var (
	version string
	commit  string
	date    string
)

var versionShort bool

// buildInfo describes the running binary.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b buildInfo) String() string {
	return fmt.Sprintf("exprql %s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}

// resolveBuildInfo merges ldflags values with module metadata. ldflags win;
// missing values fall back to dev/unknown.
func resolveBuildInfo(info *debug.BuildInfo) buildInfo {
	var modVersion, revision, vcsTime string
	if info != nil {
		if info.Main.Version != "(devel)" {
			modVersion = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
				if len(revision) > 7 {
					revision = revision[:7]
				}
			case "vcs.time":
				vcsTime = setting.Value
			}
		}
	}
	return buildInfo{
		Version: resolveString(version, modVersion, "dev"),
		Commit:  resolveString(commit, revision, "unknown"),
		Date:    resolveString(date, vcsTime, "unknown"),
	}
}

func currentBuildInfo() buildInfo {
	info, _ := debug.ReadBuildInfo()
	return resolveBuildInfo(info)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		b := currentBuildInfo()
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), b.Version)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), b)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
}
