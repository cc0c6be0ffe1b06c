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

	vgver "github.com/NVIDIA/version-gate/pkg/version"
)

func normalizeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "normalize",
		EnableShellCompletion: true,
		Usage:                 "Print the canonical major.minor.patch form of version strings",
		ArgsUsage:             "VERSION [VERSION...]",
		Description: `Normalize version strings to their canonical major.minor.patch form.

Short forms are zero-padded and a leading "v" is stripped:

  vgate normalize 2        -> 2.0.0
  vgate normalize v1.2     -> 1.2.0
  vgate normalize 0.5.1    -> 0.5.1`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one version argument is required")
			}
			for _, arg := range args {
				v, err := vgver.ParseVersion(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(outWriter(cmd), v.String())
			}
			return nil
		},
	}
}
