package main

import "github.com/gaurav-prasanna/chapterpdf/cmd"

func main() {
	cmd.Execute()
}
