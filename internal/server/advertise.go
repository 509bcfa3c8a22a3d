package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/angristan/homeshowcase/internal/api"
	"github.com/hashicorp/mdns"
)

// Advertiser announces the listing server on the local network so the
// terminal app can discover it
type Advertiser struct {
	server *mdns.Server
}

// Advertise registers instance under the listing service type. address is
// the listing's street address, published in the TXT record.
func Advertise(instance string, port int, address string) (*Advertiser, error) {
	if instance == "" {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("while reading hostname: %w", err)
		}
		instance = host
	}

	var txt []string
	if address != "" {
		txt = append(txt, "address="+address)
	}

	service, err := mdns.NewMDNSService(instance, api.ServiceType, "", "", port, nil, txt)
	if err != nil {
		return nil, fmt.Errorf("while creating mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("while starting mDNS responder: %w", err)
	}

	slog.Info("advertising listing server", "instance", instance, "service", api.ServiceType, "port", port)
	return &Advertiser{server: server}, nil
}

// Shutdown stops answering mDNS queries
func (a *Advertiser) Shutdown() error {
	if a == nil || a.server == nil {
		return nil
	}
	return a.server.Shutdown()
}
