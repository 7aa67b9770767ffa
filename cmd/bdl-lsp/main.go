// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"bdl/internal/codegen"
	"bdl/internal/lsp"
)

const lsName = "bdl"

var log = commonlog.GetLogger("bdl.lsp.server")

func main() {
	verbose := flag.Int("v", 1, "log verbosity")
	logFile := flag.String("log", "", "write logs to `file` instead of stderr")
	debug := flag.Bool("debug", false, "enable protocol debug logging")
	flag.Parse()

	var path *string
	if *logFile != "" {
		path = logFile
	}
	commonlog.Configure(*verbose, path)

	bdlHandler := lsp.NewBdlHandler(codegen.DefaultOptions())

	handler := protocol.Handler{
		Initialize:                     bdlHandler.Initialize,
		Initialized:                    bdlHandler.Initialized,
		Shutdown:                       bdlHandler.Shutdown,
		SetTrace:                       bdlHandler.SetTrace,
		TextDocumentDidOpen:            bdlHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           bdlHandler.TextDocumentDidClose,
		TextDocumentDidChange:          bdlHandler.TextDocumentDidChange,
		TextDocumentCompletion:         bdlHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: bdlHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log.Info("starting BDL language server on stdio")
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
