package main

import (
	"github.com/chayapatp/topupstore/internal/cli"
)

func main() {
	cli.Execute()
}
