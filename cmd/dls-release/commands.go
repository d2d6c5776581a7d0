package main

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dls-controls/dls-release-tools"
	"github.com/dls-controls/dls-release-tools/changes"
	"github.com/dls-controls/dls-release-tools/check"
	"github.com/dls-controls/dls-release-tools/in"
	"github.com/dls-controls/dls-release-tools/out"
	"github.com/dls-controls/dls-release-tools/versions"
)

func newSortCommand(opts *options) *cobra.Command {
	var latest bool

	cmd := &cobra.Command{
		Use:   "sort [path...]",
		Short: "Order release paths by the release number in their last segment",
		Long:  "Order release paths by the release number in their last segment. Paths are read one per line from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				var err error
				if paths, err = readLines(opts); err != nil {
					return err
				}
			}

			sorted := versions.SortPaths(paths)
			opts.logger.Debug("sorted releases", zap.Int("count", len(sorted)))

			if latest && len(sorted) > 0 {
				sorted = sorted[len(sorted)-1:]
			}

			for _, path := range sorted {
				fmt.Fprintln(opts.stdout, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&latest, "latest", false, "print only the newest release")

	return cmd
}

func newClassifyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify path...",
		Short: "Show the area, module and release a path belongs to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				location, ok := releasetools.Classify(path)
				if !ok {
					return fmt.Errorf("%s is not in a release area", path)
				}

				release := location.Release
				if release == "" {
					release = "-"
				}
				fmt.Fprintf(opts.stdout, "%s\t%s\t%s\n", location.Area, location.Module, release)
			}
			return nil
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	var (
		after string
		paths bool
	)

	cmd := &cobra.Command{
		Use:   "list module",
		Short: "List the releases of a module, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, store, err := opts.sourceAndStore(args[0])
			if err != nil {
				return err
			}

			command := check.NewCheckCommand(store)

			var response check.CheckResponse
			if after != "" {
				response, err = command.Run(check.CheckRequest{
					Source:  source,
					Version: releasetools.Version{Release: after},
				})
			} else {
				response, err = command.All(source)
			}
			if err != nil {
				return err
			}

			for _, version := range response {
				if paths {
					fmt.Fprintln(opts.stdout, version.Path)
				} else {
					fmt.Fprintln(opts.stdout, version.Release)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&after, "after", "", "only list releases newer than this one")
	cmd.Flags().BoolVar(&paths, "paths", false, "print store paths instead of release numbers")

	return cmd
}

func newLatestCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "latest module",
		Short: "Print the newest release of a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, store, err := opts.sourceAndStore(args[0])
			if err != nil {
				return err
			}

			response, err := check.NewCheckCommand(store).Run(check.CheckRequest{Source: source})
			if err != nil {
				return err
			}

			if len(response) == 0 {
				return fmt.Errorf("%s has no releases", source.Module)
			}

			fmt.Fprintln(opts.stdout, response[0].Release)
			return nil
		},
	}
}

func newTarCommand(opts *options) *cobra.Command {
	var (
		module  string
		release string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "tar directory",
		Short: "Archive a release directory into the release store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			source, err := opts.configured()
			if err != nil {
				return err
			}
			if module != "" {
				source.Module = module
			}

			if source.Module == "" || source.Area == "" {
				location, ok := releasetools.Classify(dir)
				if !ok {
					return fmt.Errorf("cannot tell the module of %s, please specify --module and --area", dir)
				}
				if source.Module == "" {
					source.Module = location.Module
				}
				if source.Area == "" {
					source.Area = string(location.Area)
				}
			}

			source, err = opts.validate(source)
			if err != nil {
				return err
			}

			store, err := opts.store(source)
			if err != nil {
				return fmt.Errorf("building release store: %s", err)
			}

			response, err := out.NewOutCommand(store).Run(filepath.Dir(dir), out.OutRequest{
				Source: source,
				Params: out.Params{
					Directory: filepath.Base(dir),
					Release:   release,
					Force:     force,
				},
			})
			if err != nil {
				return err
			}

			opts.logger.Info("released",
				zap.String("module", source.Module),
				zap.String("release", response.Version.Release),
				zap.String("path", response.Version.Path),
			)
			fmt.Fprintln(opts.stdout, response.Version.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&module, "module", "m", "", "module name (default: from the directory path)")
	cmd.Flags().StringVarP(&release, "release", "r", "", "release number (default: from the directory path)")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing release")

	return cmd
}

func newUntarCommand(opts *options) *cobra.Command {
	var (
		release  string
		noUnpack bool
	)

	cmd := &cobra.Command{
		Use:   "untar module destination",
		Short: "Fetch a release of a module and unpack it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, store, err := opts.sourceAndStore(args[0])
			if err != nil {
				return err
			}

			response, err := in.NewInCommand(store).Run(args[1], in.InRequest{
				Source:  source,
				Version: releasetools.Version{Release: release},
				Params:  in.Params{Unpack: !noUnpack},
			})
			if err != nil {
				return err
			}

			opts.logger.Info("fetched",
				zap.String("module", source.Module),
				zap.String("release", response.Version.Release),
				zap.String("destination", args[1]),
			)
			fmt.Fprintln(opts.stdout, response.Version.Release)
			return nil
		},
	}

	cmd.Flags().StringVarP(&release, "release", "r", "", "release to fetch (default: newest)")
	cmd.Flags().BoolVar(&noUnpack, "no-unpack", false, "keep the archive packed")

	return cmd
}

func newDiffCommand(opts *options) *cobra.Command {
	var (
		release string
		context int
	)

	cmd := &cobra.Command{
		Use:   "diff module working-directory",
		Short: "Show what changed in a working copy since a release",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, store, err := opts.sourceAndStore(args[0])
			if err != nil {
				return err
			}

			response, err := changes.NewChangesCommand(store).Run(args[1], changes.ChangesRequest{
				Source:  source,
				Version: releasetools.Version{Release: release},
				Params:  changes.Params{Context: &context},
			})
			if err != nil {
				return err
			}

			opts.logger.Debug("compared",
				zap.String("release", response.Version.Release),
				zap.Int("changed", len(response.Files)),
			)

			for _, file := range response.Files {
				switch file.Status {
				case changes.StatusAdded:
					fmt.Fprintf(opts.stdout, "Only in work: %s\n", file.Path)
				case changes.StatusRemoved:
					fmt.Fprintf(opts.stdout, "Only in %s: %s\n", response.Version.Release, file.Path)
				default:
					fmt.Fprint(opts.stdout, file.Diff)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&release, "release", "r", "", "release to compare against (default: newest)")
	cmd.Flags().IntVarP(&context, "context", "U", 3, "lines of context")

	return cmd
}

func (opts *options) sourceAndStore(module string) (releasetools.Source, releasetools.ReleaseStore, error) {
	source, err := opts.source(module)
	if err != nil {
		return source, nil, err
	}

	store, err := opts.store(source)
	if err != nil {
		return source, nil, fmt.Errorf("building release store: %s", err)
	}

	return source, store, nil
}

func readLines(opts *options) ([]string, error) {
	lines := []string{}

	scanner := bufio.NewScanner(opts.stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}
