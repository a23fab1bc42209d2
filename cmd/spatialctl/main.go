// Command spatialctl runs a YAML scenario through the distance-field and
// placement engines and prints, or renders, the result.
//
// Usage:
//
//	spatialctl -scenario map.yaml [-safe=true|false] [-config safemode.yaml] [-view]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/spatial/safemode"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "path to scenario YAML")
		configPath   = flag.String("config", "", "safemode YAML (optional; default reads "+safemode.EnvVar+")")
		safe         = flag.String("safe", "", "force validation on or off (true|false)")
		view         = flag.Bool("view", false, "render the result in the terminal")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("spatialctl: ")

	if *scenarioPath == "" {
		log.Fatalf("missing -scenario")
	}

	cfg := safemode.FromEnv()
	if *configPath != "" {
		var err error
		if cfg, err = safemode.LoadFile(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	switch *safe {
	case "":
	case "true":
		cfg.Enable(true)
	case "false":
		cfg.Disable()
	default:
		log.Fatalf("-safe must be true or false, got %q", *safe)
	}

	sc, err := LoadScenario(*scenarioPath)
	if err != nil {
		log.Fatalf("load scenario: %v", err)
	}
	rep, err := sc.Run(safemode.New(cfg))
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	if *view {
		if err := runView(rep); err != nil {
			log.Fatalf("view: %v", err)
		}
		return
	}
	if err := rep.Write(os.Stdout); err != nil {
		log.Fatalf("write: %v", err)
	}
}
