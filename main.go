// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"bdl/internal/codegen"
	"bdl/repl"
)

func main() {
	commonlog.Configure(0, nil)

	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Printf("Welcome to the BDL REPL, %s!\n", color.New(color.Bold).Sprint(name))
	fmt.Println("Entries are compiled to C++ as you type. Type :help for commands, Ctrl+D to exit.")
	if err := repl.Start(codegen.DefaultOptions()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString(err.Error()))
		os.Exit(1)
	}
}
