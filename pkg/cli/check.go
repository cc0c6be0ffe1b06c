// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/version-gate/pkg/gate"
	"github.com/NVIDIA/version-gate/pkg/releases"
)

// checkTarget is a named current version evaluated against the requirement.
type checkTarget struct {
	Component string
	Version   string
}

// checkResult is the outcome of one gate check.
type checkResult struct {
	Component string `json:"component,omitempty" yaml:"component,omitempty"`
	Current   string `json:"current" yaml:"current"`
	Required  string `json:"required" yaml:"required"`
	Met       bool   `json:"met" yaml:"met"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// checkReport is the serialized output of the check command.
type checkReport struct {
	Required string        `json:"required" yaml:"required"`
	Results  []checkResult `json:"results" yaml:"results"`
	Unmet    int           `json:"unmet" yaml:"unmet"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check current versions against a required minimum",
		Description: `Check one or more current server versions against a required minimum version.

Versions are normalized before comparison: short forms are zero-padded
("0.5" is treated as 0.5.0) and components compare as integers, so 0.10.0
is newer than 0.9.0.

# Examples

Check a single version:
  vgate check --required 0.5.1 --current 0.4.5

Check several versions at once:
  vgate check --required 0.5.1 --current 0.4.5 --current 0.5.9

Check a manifest of component versions (YAML map of component to version):
  vgate check --required 0.5.1 --manifest versions.yaml

Render the requirement as a product release label in denial messages:
  vgate check --required 0.5.1 --releases releases.yaml --current 0.4.5

Fail the command if any requirement is not met (useful for CI/CD):
  vgate check --required 0.5.1 --manifest versions.yaml --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "required",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Required minimum version (e.g., 0.5.1)",
			},
			&cli.StringSliceFlag{
				Name:    "current",
				Aliases: []string{"c"},
				Usage:   "Current version to check (repeatable)",
			},
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to YAML file mapping component names to current versions",
			},
			&cli.StringFlag{
				Name:  "releases",
				Usage: "Path to YAML release map relating versions to product release labels",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any version requirement is not met",
			},
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			rel, err := loadReleases(cmd.String("releases"))
			if err != nil {
				return err
			}

			targets, err := collectTargets(cmd.StringSlice("current"), cmd.String("manifest"))
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				return fmt.Errorf("nothing to check: provide --current or --manifest")
			}

			required := cmd.String("required")
			runID := uuid.NewString()
			slog.Info("checking version requirements",
				"run", runID,
				"required", required,
				"targets", len(targets))

			results := make([]checkResult, len(targets))
			var g errgroup.Group
			for i, target := range targets {
				g.Go(func() error {
					results[i] = checkOne(target, required, rel)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			report := checkReport{Results: results}
			for _, res := range results {
				if !res.Met {
					report.Unmet++
				}
				report.Required = res.Required
			}

			slog.Info("check complete",
				"run", runID,
				"targets", len(targets),
				"unmet", report.Unmet)

			if err := writeOutput(outWriter(cmd), format, report); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && report.Unmet > 0 {
				return fmt.Errorf("%d of %d version requirements not met", report.Unmet, len(targets))
			}
			return nil
		},
	}
}

// checkOne evaluates a single target through a gate spec.
func checkOne(target checkTarget, required string, rel releases.Map) checkResult {
	op := target.Component
	if op == "" {
		op = "check"
	}

	res := checkResult{
		Component: target.Component,
		Current:   target.Version,
	}

	spec, err := gate.New(op, required, gate.WithReleases(rel))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Required = spec.Required().String()

	if err := spec.Check(component{version: target.Version}); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Met = true
	return res
}

// component adapts a raw version string to the gate's capability contract.
type component struct {
	version string
}

func (c component) ServerVersion() any {
	return c.version
}

// collectTargets merges --current flags and the optional manifest file into
// a deterministic check list.
func collectTargets(current []string, manifestPath string) ([]checkTarget, error) {
	targets := make([]checkTarget, 0, len(current))
	for _, v := range current {
		targets = append(targets, checkTarget{Version: v})
	}

	if manifestPath == "" {
		return targets, nil
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", manifestPath, err)
	}
	var manifest map[string]string
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", manifestPath, err)
	}

	names := make([]string, 0, len(manifest))
	for name := range manifest {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		targets = append(targets, checkTarget{Component: name, Version: manifest[name]})
	}
	return targets, nil
}

// loadReleases loads the release map when a path is given, otherwise
// returns an empty map (labels fall back to raw versions).
func loadReleases(path string) (releases.Map, error) {
	if path == "" {
		return releases.Map{}, nil
	}
	rel, err := releases.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load release map: %w", err)
	}
	return rel, nil
}
