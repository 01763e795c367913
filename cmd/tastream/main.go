package main

import (
	"github.com/tastream/tastream/pkg/cmd"
)

func main() {
	cmd.Execute()
}
