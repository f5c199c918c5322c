// Package cli — clone.go implements the "vrdev clone" command.
//
// Clone stamps out a new project from the template checkout:
//  1. git clone --recurse-submodules into <destination-root>/<new-app-name>
//  2. Rewrite the package id, app name, and display title across the tree
//  3. Move the Java/Kotlin package directory to the new package path
//  4. Commit the rename in the fresh clone
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amwatson/vrdev/internal/invoke"
	"github.com/amwatson/vrdev/internal/model"
	"github.com/amwatson/vrdev/internal/template"
)

// cloneFlags holds the flag values for the clone command.
type cloneFlags struct {
	source string // --source: template checkout to clone from
}

// NewCloneCommand creates the "clone" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCloneCommand() *cobra.Command {
	flags := &cloneFlags{}

	cmd := &cobra.Command{
		Use:   "clone <destination-root> <new-app-name> <new-package>",
		Short: "Clone the template into a renamed project",
		Long: `Clone the template project with full Git history and rewrite its identity:
the Android package id, the CamelCase app name, and the display title are
replaced across all source, build, and resource files, and the package
directory is moved to match. The rename is committed in the new clone.

The new project is created at <destination-root>/<new-app-name>.

Examples:
  vrdev clone ~/dev CoolProject com.example.coolproject
  vrdev clone --source ~/dev/VrTemplate ~/dev CoolProject com.example.coolproject`,

		// Args validates the three positional arguments: where to create
		// the project, its name, and its package.
		Args: cobra.ExactArgs(3),

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClone(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.source, "source", ".", "Template checkout to clone from")

	return cmd
}

// runClone validates the new identity, loads the old identity from the
// project settings, and runs the clone-and-rewrite.
func runClone(cmd *cobra.Command, args []string, flags *cloneFlags) error {
	destRoot, appName, packageID := args[0], args[1], args[2]

	if err := model.ValidateApplicationID(packageID); err != nil {
		return model.WrapCLIError(model.ExitNoCommands, "invalid package name", err)
	}

	// The identity being replaced comes from the source checkout's
	// settings; for an unmodified template these are the defaults.
	project, err := loadProject()
	if err != nil {
		return model.WrapCLIError(model.ExitNoCommands, "failed to load project settings", err)
	}

	logger := newLogger()
	cloner := template.NewCloner(invoke.New(logger), logger)

	dest, err := cloner.Clone(cmd.Context(), template.Options{
		Source:       flags.source,
		DestRoot:     destRoot,
		AppName:      appName,
		PackageID:    packageID,
		OldPackageID: project.ApplicationID,
		OldAppName:   project.AppName,
		OldAppTitle:  project.AppTitle,
	})
	if err != nil {
		return model.WrapCLIError(model.ExitNoCommands, "clone failed", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Project cloned and renamed to %s\n", dest)
	return nil
}
