package main

import (
	"rail-sqlgen/cmd"
)

func main() {
	cmd.Execute()
}
