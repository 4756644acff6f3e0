/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package main

import "github.com/dataloop-ai/computectl/pkg/cli"

func main() {
	cli.Execute()
}
