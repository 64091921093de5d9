package main

import "github.com/anonymousfse26/orbis/cmd"

func main() {
	cmd.Execute()
}
