package main

import "github.com/ribeirowl/processador-giga/cmd"

func main() {
	cmd.Execute()
}
