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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/version-gate/pkg/releases"
	vgver "github.com/NVIDIA/version-gate/pkg/version"
)

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resolve",
		EnableShellCompletion: true,
		Usage:                 "Resolve a version to its product release label",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Resolve versions to product release labels using a release map file.

The release map is a YAML mapping of dotted versions to labels:

  "0.5.1": 2022R1
  "0.5.9": 2022R2

Versions without an entry resolve to their canonical dotted form.

# Examples

  vgate resolve --releases releases.yaml 0.5.1
  vgate resolve --releases releases.yaml 0.5.1 0.9.0`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "releases",
				Required: true,
				Usage:    "Path to YAML release map relating versions to product release labels",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one version argument is required")
			}

			rel, err := releases.LoadFile(cmd.String("releases"))
			if err != nil {
				return fmt.Errorf("failed to load release map: %w", err)
			}

			for _, arg := range args {
				v, err := vgver.ParseVersion(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(outWriter(cmd), rel.Label(v))
			}
			return nil
		},
	}
}
