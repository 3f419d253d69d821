package main

import "github.com/frahmantamala/disciplinary-management/cmd"

func main() {
	cmd.Execute()
}
