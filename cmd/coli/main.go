package main

import "github.com/coli-team/coli-web/cmd/coli/cmd"

func main() {
	cmd.Execute()
}
