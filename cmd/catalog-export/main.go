package main

import (
	"context"
	"flag"
	"os"

	platformcmd "github.com/louisbranch/ordnance/internal/platform/cmd"
	"github.com/louisbranch/ordnance/internal/platform/config"
	catalogexport "github.com/louisbranch/ordnance/internal/tools/exporter/catalog"
)

func main() {
	cfg, err := catalogexport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	err = platformcmd.Run(context.Background(), platformcmd.ServiceCatalogExport, func(ctx context.Context) error {
		return catalogexport.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
