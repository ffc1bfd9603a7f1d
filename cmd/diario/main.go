package main

import "diario/cmd/diario/cmd"

func main() {
	cmd.Execute()
}
