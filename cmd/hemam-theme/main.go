// Hemam Theme - colour contrast and theme tooling for the Moeen clinic app
//
// hemam-theme checks and repairs text contrast, applies the theme's colour
// intelligence rules and audits HTML pages against the saved theme settings.
//
// Copyright (c) 2025 The Moeen Authors
// Licensed under the MIT License
package main

import "github.com/moeen/hemam-theme/internal/cli"

func main() {
	cli.Execute()
}
