// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package main

import "github.com/kars1996/credit/internal/cli"

func main() { cli.Main(new(app)) }
