package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carverauto/wanprov/pkg/config"
	"github.com/carverauto/wanprov/pkg/logger"
	"github.com/carverauto/wanprov/pkg/models"
	"github.com/carverauto/wanprov/pkg/netbox"
	"github.com/carverauto/wanprov/pkg/pipeline"
	"github.com/carverauto/wanprov/pkg/provision"
	"github.com/carverauto/wanprov/pkg/render"
	"github.com/carverauto/wanprov/pkg/transport"
)

type cliConfig struct {
	Logging   logger.Config    `json:"logging"`
	NetBox    netbox.Config    `json:"netbox"`
	Transport transport.Config `json:"transport"`
	Provision provision.Config `json:"provision"`
}

func (c *cliConfig) Validate() error {
	if c.NetBox.Endpoint == "" {
		return errors.New("netbox.endpoint is required")
	}

	if c.NetBox.APIToken == "" {
		return errors.New("netbox.api_token is required")
	}

	return c.Provision.Validate()
}

func main() {
	configPath := flag.String("config", "/etc/wanprov/wanprov.json", "Path to config file")
	autoApprove := flag.Bool("yes", false, "Approve all confirmation gates without prompting")
	flag.Parse()

	ctx := context.Background()

	var cfg cliConfig

	if err := config.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		log.Fatalf("Failed to load config templates: %v", err)
	}

	artifacts, err := render.NewArtifactStore(cfg.Provision.ArtifactDir)
	if err != nil {
		log.Fatalf("Failed to prepare artifact directory: %v", err)
	}

	inventory := netbox.NewClient(cfg.NetBox, zlog)
	deviceTransport := transport.NewIOSTransport(cfg.Transport, zlog)

	provisioner := provision.New(cfg.Provision, inventory, deviceTransport, renderer, artifacts, zlog)

	devices, err := provisioner.Kickoff(ctx)
	if err != nil {
		if errors.Is(err, provision.ErrNoDevices) {
			fmt.Fprintln(os.Stderr, "No matching hosts found in inventory")
			os.Exit(1)
		}

		log.Fatalf("Failed to build device inventory: %v", err)
	}

	fmt.Printf("This run will provision %d WAN router(s):\n", len(devices))

	for _, device := range devices {
		fmt.Printf("  %s (%s)\n", device.Name, device.ManagementAddr)
	}

	confirmer := pipeline.Confirmer(pipeline.AutoApprove)
	if !*autoApprove {
		confirmer = pipeline.ConfirmerFunc(promptApprove)

		ok, err := promptApprove(ctx, "start")
		if err != nil {
			log.Fatalf("Failed to read confirmation: %v", err)
		}

		if !ok {
			fmt.Println("Exiting without changes")
			os.Exit(1)
		}
	}

	runner := pipeline.NewRunner(cfg.Provision.Concurrency, confirmer, zlog)

	report, err := runner.Run(ctx, provisioner.Plan(), devices)
	if err != nil {
		log.Fatalf("Pipeline run failed: %v", err)
	}

	printReport(report)

	if report.Aborted {
		os.Exit(1)
	}
}

// printReport summarizes the run per stage: failed hosts and warnings.
func printReport(report *models.RunReport) {
	fmt.Printf("\nRun %s\n", report.RunID)

	for i := range report.Stages {
		stage := &report.Stages[i]

		fmt.Printf("%-20s failed hosts: %v\n", stage.Name, stage.FailedHosts())

		for device, warnings := range stage.Warnings {
			for _, warning := range warnings {
				fmt.Printf("%-20s warning %s: %s\n", "", device, warning)
			}
		}
	}

	if report.Aborted {
		fmt.Printf("Run aborted at gate %q; completed stages were not reverted\n", report.AbortedAt)
	}
}

// promptApprove asks the operator to approve a gate on stdin.
func promptApprove(_ context.Context, gateName string) (bool, error) {
	fmt.Printf("Proceed with %s? (y/n) ", gateName)

	reader := bufio.NewReader(os.Stdin)

	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
