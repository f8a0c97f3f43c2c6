package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	storefront "github.com/goliatone/go-storefront"
	"github.com/goliatone/go-storefront/pkg/assemble"
	"github.com/goliatone/go-storefront/pkg/catalog"
)

var localeChoices = []string{"us-en", "en-GB", "de-DE", "fr-FR", "es-ES", "ja-JP", "default"}

func main() {
	productSrc := flag.String("product", "", "product JSON path or URL")
	locale := flag.String("locale", "", "store locale (e.g. us-en)")
	template := flag.String("template", "", "base template page URL")
	blocks := flag.String("blocks", "", "comma-separated block class names")
	configPath := flag.String("config", "", "pipeline config YAML")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for missing values")
	flag.Parse()

	cfg := pipelineConfig{}
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg = cfg.merge(*locale, *template, *blocks)

	if *interactive {
		if err := promptMissing(&cfg); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}
	if cfg.Template == "" {
		log.Fatal("a template URL is required (use -template, -config, or -interactive)")
	}
	if *productSrc == "" {
		log.Fatal("a product source is required (use -product)")
	}

	product, err := loadProduct(*productSrc)
	if err != nil {
		log.Fatalf("Failed to load product: %v", err)
	}

	engine, err := assemble.NewEngine()
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	builder := storefront.NewBuilder(
		storefront.WithAssembler(assemble.New(assemble.WithEngine(engine))),
	)

	page, err := builder.BuildPage(context.Background(), storefront.PageRequest{
		Product:      product,
		Locale:       cfg.Locale,
		TemplateURL:  cfg.Template,
		BlockClasses: cfg.Blocks,
		Theme:        cfg.Theme,
		Variant:      cfg.Variant,
	})
	if err != nil {
		log.Fatalf("Failed to build page: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(page), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Page written to %s\n", *output)
	} else {
		fmt.Println(page)
	}
}

func promptMissing(cfg *pipelineConfig) error {
	if cfg.Template == "" {
		prompt := &survey.Input{
			Message: "Base template page URL:",
			Help:    "the storefront page fetched as <url>.plain.html",
		}
		if err := survey.AskOne(prompt, &cfg.Template, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}
	if cfg.Locale == "" {
		prompt := &survey.Select{
			Message: "Store locale:",
			Options: localeChoices,
			Default: "us-en",
		}
		if err := survey.AskOne(prompt, &cfg.Locale); err != nil {
			return err
		}
	}
	return nil
}

func loadProduct(src string) (catalog.Product, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := http.Get(src)
		if err != nil {
			return catalog.Product{}, err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return catalog.Product{}, fmt.Errorf("fetch product: unexpected status %s", resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return catalog.Product{}, err
		}
		return catalog.Decode(data)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.Decode(data)
}
