package main

import (
	"embed"

	"github.com/suyash01/splitease/internal/cli"
)

//go:embed web/templates/*
var templates embed.FS

func main() {
	cli.Execute(templates)
}
