package main

import "github.com/KaramelBytes/folio-cli/cmd"

func main() {
	cmd.Execute()
}
