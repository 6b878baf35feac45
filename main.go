package main

import (
	"startup-manager/gui"
	"startup-manager/logging"
)

func main() {
	defer logging.RecoverPanic("main")
	gui.Run()
}
