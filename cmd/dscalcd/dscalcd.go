package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/RoanBrand/CelluloseDS/config"
	"github.com/RoanBrand/CelluloseDS/ds"
	"github.com/RoanBrand/CelluloseDS/http"
	"github.com/RoanBrand/CelluloseDS/log"
	"github.com/RoanBrand/CelluloseDS/results"
	"github.com/RoanBrand/CelluloseDS/sample"
	"github.com/kardianos/service"
)

type app struct {
	conf *config.Config
}

func (p *app) Start(s service.Service) error {
	go p.run()
	return nil
}

func (p *app) run() {
	execPath, err := os.Executable()
	if err != nil {
		panic(err)
	}
	dir := filepath.Dir(execPath)

	conf, err := config.LoadConfig(filepath.Join(dir, "config.json"))
	if err != nil {
		panic(err)
	}
	p.conf = conf

	logFile := conf.LogFile
	if !filepath.IsAbs(logFile) {
		logFile = filepath.Join(dir, logFile)
	}
	log.Setup(logFile, conf.DebugMode)

	srv, err := newServer(conf, filepath.Join(dir, "static"))
	if err != nil {
		log.Fatal(err)
	}

	if err = srv.Start(conf.HTTPServerPort); err != nil {
		log.Fatal(err)
	}
}

func (p *app) Stop(s service.Service) error {
	return nil
}

// newServer wires the engine and the data sources of conf into the HTTP API.
func newServer(conf *config.Config, staticPath string) (*http.Server, error) {
	engine, err := conf.Engine()
	if err != nil {
		return nil, err
	}
	method, err := ds.ParseMethod(conf.DefaultMethod)
	if err != nil {
		return nil, err
	}

	var resultGetter func() ([]sample.Record, error)
	if len(conf.DataSources) > 0 {
		sources, err := results.Sources(conf)
		if err != nil {
			return nil, err
		}
		resultGetter = results.NewCache(sources, conf.NumberOfResults, 5*time.Second).Get
	}

	if _, err := os.Stat(staticPath); err != nil {
		staticPath = ""
	}

	log.Debugf("engine features: %s, default method %s with %s", engine.Features(), method, conf.DefaultSubstituent)
	return http.NewServer(engine, method, conf.DefaultSubstituent, resultGetter, staticPath), nil
}

func main() {
	svcFlag := flag.String("service", "", "Control the system service.")
	flag.Parse()

	svcConfig := &service.Config{
		Name:        "CelluloseDS",
		DisplayName: "Cellulose DS Calculator",
		Description: "Provides API for degree of substitution calculations from elemental analysis results",
	}

	s, err := service.New(&app{}, svcConfig)
	if err != nil {
		log.Fatal(err)
	}

	if *svcFlag != "" {
		err = service.Control(s, *svcFlag)
		if err != nil {
			log.Printf("Valid actions: %q\n", service.ControlAction)
			log.Fatal(err)
		}
		return
	}

	logger, err := s.Logger(nil)
	if err != nil {
		log.Fatal(err)
	}
	err = s.Run()
	if err != nil {
		logger.Error(err)
	}
}
