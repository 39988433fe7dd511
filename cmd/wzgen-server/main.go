package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/urzadlab/go-wzgen/pkg/convert"
	"github.com/urzadlab/go-wzgen/pkg/fields"
	"github.com/urzadlab/go-wzgen/pkg/fonts"
	"github.com/urzadlab/go-wzgen/pkg/httpapi"
	"github.com/urzadlab/go-wzgen/pkg/municipality"
	"github.com/urzadlab/go-wzgen/pkg/orchestrator"
	"github.com/urzadlab/go-wzgen/pkg/render"
	"github.com/urzadlab/go-wzgen/pkg/renderers/docx"
	"github.com/urzadlab/go-wzgen/pkg/renderers/pdf"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("dotenv: %v", err)
	}

	configDir := envOr("WZGEN_CONFIG_DIR", "config")
	fontDir := envOr("WZGEN_FONT_DIR", filepath.Join(configDir, "fonts"))
	port := envOr("PORT", "8080")

	if err := fonts.Ensure(fontDir); err != nil {
		log.Printf("fonts unavailable, PDF output falls back to core fonts: %v", err)
	}

	munReg, err := municipality.Load(filepath.Join(configDir, "municipalities.json"))
	if err != nil {
		log.Printf("municipalities config: %v, using built-in defaults", err)
		munReg = municipality.Default()
	}
	fieldReg, err := fields.LoadRegistry(filepath.Join(configDir, "fields.yaml"))
	if err != nil {
		log.Printf("fields config: %v, using built-in defaults", err)
		fieldReg = fields.DefaultRegistry()
	}

	renderReg := render.NewRegistry()
	renderReg.MustRegister(docx.New())
	renderReg.MustRegister(pdf.New(pdf.WithFontDir(fontDir)))

	opts := []orchestrator.Option{
		orchestrator.WithMunicipalities(munReg),
		orchestrator.WithFieldRegistry(fieldReg),
		orchestrator.WithRenderRegistry(renderReg),
		orchestrator.WithTemplateDir(filepath.Join(configDir, "templates")),
	}
	if soffice := os.Getenv("WZGEN_SOFFICE"); soffice != "" {
		opts = append(opts, orchestrator.WithConverter(&convert.LibreOffice{Binary: soffice}))
	}
	orch := orchestrator.New(opts...)

	handler, err := httpapi.NewHandler(orch, fieldReg, munReg)
	if err != nil {
		log.Fatalf("handler: %v", err)
	}

	router := gin.Default()
	handler.Register(router)

	log.Printf("listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
