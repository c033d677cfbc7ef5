package main

import "github.com/deevus/texttable/cmd"

func main() {
	cmd.Execute()
}
