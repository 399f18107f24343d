package main

import "github.com/qobs-build/sysincludes/cmd"

func main() {
	cmd.Execute()
}
