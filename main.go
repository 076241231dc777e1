package main

import "github.com/josephlewis42/noosh/cmd"

func main() {
	cmd.Execute()
}
