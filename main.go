package main

import "github.com/grivg/grivg-cli/cmd"

func main() {
	cmd.Execute()
}
