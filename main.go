/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"github.com/andrewhowdencom/mdpress/cmd"
)

func main() {
	cmd.Execute()
}
