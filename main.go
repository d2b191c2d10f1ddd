/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/organizer/cmd"
	"github.com/josephgoksu/organizer/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
