/*
Copyright © 2025 OpenRailDev <info@openraildev.org>
*/
package main

import "github.com/openraildev/consistfix/cmd"

func main() {
	cmd.Execute()
}
