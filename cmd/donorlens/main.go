package main

import (
	"donorlens-backend/cmd/donorlens/cmd"
)

func main() {
	cmd.Execute()
}
