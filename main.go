package main

import "github.com/KaramelBytes/dataloom-cli/cmd"

func main() {
	cmd.Execute()
}
