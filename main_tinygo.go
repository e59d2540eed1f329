//go:build tinygo

package main

import (
	"quartz/app"
	"quartz/hal"
)

func main() {
	app.Run(hal.New())
}
