package main

import "github.com/gofinances/backend/cmd"

func main() {
	cmd.Execute()
}
