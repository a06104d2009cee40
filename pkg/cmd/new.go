package cmd

import (
	"os"
	"unicode"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new project directory.",
	Long: `Create an empty directory <name> in the current working directory; no
project files are written into it. Fails if the directory already exists or
<name> is not a valid package name.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		if !validPackageName(name) {
			fail("invalid package name %q: must contain only letters, digits, '-' or '_', and not start with a digit", name)
		}

		if _, err := os.Stat(name); err == nil {
			fail("directory %q already exists", name)
		}

		if err := os.Mkdir(name, 0o755); err != nil {
			fail("could not create %q: %v", name, err)
		}

		log.WithField("name", name).Info("scaffolded new project")
	},
}

// validPackageName reports whether name is composed solely of letters,
// digits, '-' and '_', and does not begin with a digit (spec.md §6).
func validPackageName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case unicode.IsLetter(r), r == '-', r == '_':
			continue
		case unicode.IsDigit(r):
			if i == 0 {
				return false
			}

			continue
		default:
			return false
		}
	}

	return true
}
