package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/urzadlab/go-wzgen/pkg/casefile"
	"github.com/urzadlab/go-wzgen/pkg/fields"
	"github.com/urzadlab/go-wzgen/pkg/municipality"
	"github.com/urzadlab/go-wzgen/pkg/orchestrator"
	"github.com/urzadlab/go-wzgen/pkg/validation"
)

func main() {
	casePath := flag.String("case", "", "path to a saved case snapshot (JSON)")
	templateDir := flag.String("templates", "config/templates", "template directory")
	output := flag.String("output", "", "output file (derived from the case number if empty)")
	flag.Parse()

	if *casePath == "" {
		log.Fatal("usage: wzgen-cli -case sprawa.json [-output dokument.docx]")
	}

	data, err := os.ReadFile(*casePath)
	if err != nil {
		log.Fatalf("read case: %v", err)
	}
	snapshot, err := casefile.Decode(data)
	if err != nil {
		log.Fatalf("decode case: %v", err)
	}
	fields.CopyApplicationOnly(snapshot.Wniosek, snapshot.Analiza)

	munReg := municipality.Default()
	fieldReg := fields.DefaultRegistry()

	if snapshot.Gmina == "" {
		prompt := &survey.Select{
			Message: "Gmina:",
			Options: munReg.Names(),
		}
		if err := survey.AskOne(prompt, &snapshot.Gmina); err != nil {
			log.Fatalf("prompt: %v", err)
		}
	}
	if snapshot.CaseNumber == "" {
		prompt := &survey.Input{Message: "Numer sprawy:"}
		if err := survey.AskOne(prompt, &snapshot.CaseNumber); err != nil {
			log.Fatalf("prompt: %v", err)
		}
	}

	var document string
	if err := survey.AskOne(&survey.Select{
		Message: "Dokument:",
		Options: []string{"analiza", "decyzja"},
		Default: "analiza",
	}, &document); err != nil {
		log.Fatalf("prompt: %v", err)
	}
	var format string
	if err := survey.AskOne(&survey.Select{
		Message: "Format:",
		Options: []string{"docx", "pdf"},
		Default: "docx",
	}, &format); err != nil {
		log.Fatalf("prompt: %v", err)
	}

	if errs := validation.Check(snapshot.Wniosek, fieldReg); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, "•", msg)
		}
		os.Exit(1)
	}

	docType := orchestrator.DocumentAnalysis
	if document == "decyzja" {
		docType = orchestrator.DocumentDecision
	}

	orch := orchestrator.New(
		orchestrator.WithMunicipalities(munReg),
		orchestrator.WithFieldRegistry(fieldReg),
		orchestrator.WithTemplateDir(*templateDir),
	)
	result, err := orch.Generate(context.Background(), orchestrator.Request{
		Document:     docType,
		Format:       orchestrator.Format(format),
		Municipality: snapshot.Gmina,
		CaseNumber:   snapshot.CaseNumber,
		Wniosek:      snapshot.Wniosek,
		Analiza:      snapshot.Analiza,
	})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	path := *output
	if path == "" {
		path = result.Filename
	}
	if err := os.WriteFile(path, result.Bytes, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	fmt.Printf("Dokument zapisany: %s\n", path)
}
