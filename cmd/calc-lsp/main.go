// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"calc/internal/calc"
	"calc/internal/lsp"
)

const lsName = "calc" // Name identifier for the language server

var (
	verbosity = flag.Int("verbosity", 1, "log verbosity")
	logFile   = flag.String("log", "", "log to this file instead of stderr")
	lenient   = flag.Bool("lenient", false, "ignore input left over after each expression")
)

func main() {
	flag.Parse()

	var path *string
	if *logFile != "" {
		path = logFile
	}
	commonlog.Configure(*verbosity, path)
	log := commonlog.GetLogger("calc.lsp")

	var opts []calc.Option
	if *lenient {
		opts = append(opts, calc.WithTrailingInput())
	}
	calcHandler := lsp.NewCalcHandler(calc.New(opts...))

	handler := protocol.Handler{
		Initialize:                     calcHandler.Initialize,
		Initialized:                    calcHandler.Initialized,
		Shutdown:                       calcHandler.Shutdown,
		SetTrace:                       calcHandler.SetTrace,
		TextDocumentDidOpen:            calcHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           calcHandler.TextDocumentDidClose,
		TextDocumentDidChange:          calcHandler.TextDocumentDidChange,
		TextDocumentHover:              calcHandler.TextDocumentHover,
		TextDocumentSemanticTokensFull: calcHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting calc language server")

	// stdio is what most editors use to talk to a language server
	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %v", err)
		os.Exit(1)
	}
}
