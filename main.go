package main

import "github.com/peekdb/peekdb/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
