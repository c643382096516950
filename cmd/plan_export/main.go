package main

import (
	"flag"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainingadventure/internal/logging"
	"github.com/2beens/trainingadventure/internal/training/plan"
	"github.com/2beens/trainingadventure/pkg"
)

func main() {
	out := flag.String("out", plan.TemplateFileName, "path of the exported plan template CSV")
	force := flag.Bool("force", false, "overwrite an existing output file")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    *logLevel,
	})

	exists, err := pkg.PathExists(*out, false)
	if err != nil {
		log.Fatalf("check %s: %s", *out, err)
	}
	if exists && !*force {
		log.Fatalf("%s already exists, use -force to overwrite it", *out)
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create output dir: %s", err)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %s", *out, err)
	}

	catalog := plan.DefaultCatalog()
	if err := catalog.WriteTemplate(f); err != nil {
		_ = f.Close()
		log.Fatalf("write plan template: %s", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %s", *out, err)
	}

	log.Infof("exported %d plan rows of [%s] to %s", len(catalog.TemplateRows()), catalog.Name(), *out)
}
